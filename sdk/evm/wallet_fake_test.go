package evm

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var lggr = zap.NewNop().Sugar()

type walletError struct {
	code int
	msg  string
}

func (e *walletError) Error() string  { return e.msg }
func (e *walletError) ErrorCode() int { return e.code }

// fakeWallet serves the eth_ and wallet_ namespaces of a browser wallet over an in process
// RPC server.
type fakeWallet struct {
	mu sync.Mutex

	accounts   []common.Address
	connectErr error

	txHash common.Hash
	txArgs []json.RawMessage
	txErr  error

	sendCallsResult json.RawMessage
	sendCallsErr    error
	sendCalls       []json.RawMessage

	// statuses are served in order by wallet_getCallsStatus; the last one repeats.
	statuses   []json.RawMessage
	statusErr  error
	statusHits int

	capabilities    map[string]map[string]any
	capabilitiesErr error

	shown   []string
	showErr error
}

func newFakeWallet(t *testing.T, w *fakeWallet) *rpc.Client {
	t.Helper()

	server := rpc.NewServer()
	require.NoError(t, server.RegisterName("eth", &ethService{w: w}))
	require.NoError(t, server.RegisterName("wallet", &walletService{w: w}))

	client := rpc.DialInProc(server)
	t.Cleanup(func() {
		client.Close()
		server.Stop()
	})

	return client
}

type ethService struct {
	w *fakeWallet
}

func (s *ethService) Accounts() []common.Address {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	return s.w.accounts
}

func (s *ethService) RequestAccounts() ([]common.Address, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if s.w.connectErr != nil {
		return nil, s.w.connectErr
	}

	return s.w.accounts, nil
}

func (s *ethService) SendTransaction(args json.RawMessage) (common.Hash, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	s.w.txArgs = append(s.w.txArgs, args)
	if s.w.txErr != nil {
		return common.Hash{}, s.w.txErr
	}

	return s.w.txHash, nil
}

type walletService struct {
	w *fakeWallet
}

func (s *walletService) SendCalls(req json.RawMessage) (json.RawMessage, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	s.w.sendCalls = append(s.w.sendCalls, req)
	if s.w.sendCallsErr != nil {
		return nil, s.w.sendCallsErr
	}

	return s.w.sendCallsResult, nil
}

func (s *walletService) GetCallsStatus(_ context.Context, _ string) (json.RawMessage, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	s.w.statusHits++
	if s.w.statusErr != nil {
		return nil, s.w.statusErr
	}

	i := min(s.w.statusHits, len(s.w.statuses)) - 1

	return s.w.statuses[i], nil
}

func (s *walletService) GetCapabilities(_ common.Address, _ []string) (map[string]map[string]any, error) {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	if s.w.capabilitiesErr != nil {
		return nil, s.w.capabilitiesErr
	}

	return s.w.capabilities, nil
}

func (s *walletService) ShowCallsStatus(batchID string) error {
	s.w.mu.Lock()
	defer s.w.mu.Unlock()

	s.w.shown = append(s.w.shown, batchID)

	return s.w.showErr
}
