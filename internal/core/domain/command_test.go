package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/lampo-network/lampod/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		fixtures := []struct {
			method         string
			params         string
			expectedParams string
		}{
			{
				method: "getinfo",
			},
			{
				method:         "connect",
				params:         ` {"node_id":"02aa","addr":"127.0.0.1:9735"} `,
				expectedParams: `{"node_id":"02aa","addr":"127.0.0.1:9735"}`,
			},
			{
				method:         "connect",
				params:         `["02aa", "127.0.0.1:9735"]`,
				expectedParams: `["02aa", "127.0.0.1:9735"]`,
			},
			{
				method:         "listpayments",
				params:         `null`,
				expectedParams: `null`,
			},
		}

		for _, f := range fixtures {
			cmd, err := domain.NewCommand(
				domain.NewRequest(f.method, json.RawMessage(f.params)),
			)
			require.NoError(t, err)

			extCmd, ok := cmd.(domain.ExternalCommand)
			require.True(t, ok)
			require.Equal(t, f.method, extCmd.Request.Method)
			require.Equal(t, f.expectedParams, string(extCmd.Request.Params))
			require.Equal(t, "ExternalCommand("+f.method+")", extCmd.String())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		fixtures := []struct {
			method      string
			params      string
			expectedErr string
		}{
			{
				method:      "",
				expectedErr: "unrecognized method shape: missing method",
			},
			{
				method:      "get info",
				expectedErr: `unrecognized method shape: invalid method "get info"`,
			},
			{
				method:      "connect",
				params:      `{"node_id":`,
				expectedErr: "unrecognized method shape: invalid params for method connect",
			},
			{
				method:      "connect",
				params:      `"02aa"`,
				expectedErr: "unrecognized method shape: params for method connect must be an object or an array",
			},
			{
				method:      "connect",
				params:      `42`,
				expectedErr: "unrecognized method shape: params for method connect must be an object or an array",
			},
		}

		for _, f := range fixtures {
			cmd, err := domain.NewCommand(
				domain.NewRequest(f.method, json.RawMessage(f.params)),
			)
			require.ErrorIs(t, err, domain.ErrMalformedRequest)
			require.EqualError(t, err, f.expectedErr)
			require.Nil(t, cmd)
		}
	})
}
