package handlers

import (
	"context"
	"encoding/json"

	"github.com/lampo-network/lampod/internal/core/application"
	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/lampo-network/lampod/internal/core/ports"
	log "github.com/sirupsen/logrus"
)

type method func(ctx context.Context, params json.RawMessage) (interface{}, error)

type handler struct {
	inventory ports.InventoryService
	peers     ports.PeerService
	payments  domain.PaymentRepository

	methods map[string]method
}

// NewHandler returns the external handler answering the node's built-in
// methods. A method is exposed only if its collaborator is given.
func NewHandler(
	inventorySvc ports.InventoryService, peerSvc ports.PeerService,
	paymentRepo domain.PaymentRepository,
) application.ExternalHandler {
	h := &handler{
		inventory: inventorySvc,
		peers:     peerSvc,
		payments:  paymentRepo,
		methods:   make(map[string]method),
	}

	if inventorySvc != nil {
		h.methods["getinfo"] = h.getInfo
	}
	if peerSvc != nil {
		h.methods["connect"] = h.connect
		h.methods["listpeers"] = h.listPeers
	}
	if paymentRepo != nil {
		h.methods["listpayments"] = h.listPayments
	}
	return h
}

func (h *handler) Handle(
	ctx context.Context, req domain.Request,
) (json.RawMessage, bool, error) {
	m, ok := h.methods[req.Method]
	if !ok {
		return nil, false, nil
	}

	result, err := m(ctx, req.Params)
	if err != nil {
		log.WithError(err).Debugf("method %s failed", req.Method)
		return nil, false, err
	}

	resp, err := json.Marshal(result)
	if err != nil {
		return nil, false, err
	}
	return resp, true, nil
}

func (h *handler) getInfo(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	return h.inventory.GetInfo(ctx)
}

func (h *handler) connect(ctx context.Context, params json.RawMessage) (interface{}, error) {
	req, err := parseConnectRequest(params)
	if err != nil {
		return nil, err
	}

	if err := h.peers.Connect(ctx, req.nodeID, req.addr); err != nil {
		return nil, err
	}
	log.Infof("connected to peer %s at %s", req.rawNodeID, req.addr)

	return ports.Peer{NodeID: req.rawNodeID, Address: req.addr}, nil
}

func (h *handler) listPeers(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	peers, err := h.peers.ListPeers(ctx)
	if err != nil {
		return nil, err
	}
	if peers == nil {
		peers = make([]ports.Peer, 0)
	}
	return listPeersResponse{peers}, nil
}

func (h *handler) listPayments(ctx context.Context, _ json.RawMessage) (interface{}, error) {
	payments, err := h.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	return toListPaymentsResponse(payments), nil
}
