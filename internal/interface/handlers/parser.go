package handlers

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lampo-network/lampod/internal/core/ports"
)

type connectRequest struct {
	rawNodeID string
	nodeID    *btcec.PublicKey
	addr      string
}

type connectParams struct {
	NodeID string `json:"node_id"`
	Addr   string `json:"addr"`
}

type listPeersResponse struct {
	Peers []ports.Peer `json:"peers"`
}

type paymentInfo struct {
	PaymentHash string `json:"payment_hash"`
	AmountMsat  uint64 `json:"amount_msat"`
	Purpose     string `json:"purpose"`
	Timestamp   int64  `json:"timestamp"`
}

type listPaymentsResponse struct {
	Payments []paymentInfo `json:"payments"`
}

// parseConnectRequest accepts named params {"node_id", "addr"} or
// positional ones [node_id, addr].
func parseConnectRequest(params json.RawMessage) (*connectRequest, error) {
	params = bytes.TrimSpace(params)
	if len(params) <= 0 || bytes.Equal(params, []byte("null")) {
		return nil, fmt.Errorf("missing params")
	}

	var p connectParams
	if params[0] == '[' {
		var args []string
		if err := json.Unmarshal(params, &args); err != nil {
			return nil, fmt.Errorf("invalid params: %s", err)
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("invalid params: expected node id and address")
		}
		p = connectParams{args[0], args[1]}
	} else if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid params: %s", err)
	}

	nodeID, err := parseNodeID(p.NodeID)
	if err != nil {
		return nil, err
	}
	if len(p.Addr) <= 0 {
		return nil, fmt.Errorf("missing address")
	}
	if _, _, err := net.SplitHostPort(p.Addr); err != nil {
		return nil, fmt.Errorf("invalid address: %s", err)
	}

	return &connectRequest{p.NodeID, nodeID, p.Addr}, nil
}

func parseNodeID(nodeID string) (*btcec.PublicKey, error) {
	if len(nodeID) <= 0 {
		return nil, fmt.Errorf("missing node id")
	}
	buf, err := hex.DecodeString(nodeID)
	if err != nil {
		return nil, fmt.Errorf("invalid node id format")
	}
	key, err := btcec.ParsePubKey(buf)
	if err != nil {
		return nil, fmt.Errorf("invalid node id: %s", err)
	}
	return key, nil
}

func toListPaymentsResponse(payments []domain.Payment) listPaymentsResponse {
	list := make([]paymentInfo, 0, len(payments))
	for _, p := range payments {
		list = append(list, paymentInfo{
			PaymentHash: p.Hash.String(),
			AmountMsat:  p.AmountMsat,
			Purpose:     p.Purpose,
			Timestamp:   p.Timestamp,
		})
	}
	return listPaymentsResponse{list}
}
