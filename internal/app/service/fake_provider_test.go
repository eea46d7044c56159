package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"wallet_inspector/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// fakeProvider is an in-memory port.ProviderClient.
type fakeProvider struct {
	balances    *entity.TokenBalances
	balancesErr error

	metadata      map[string]*entity.AssetMetadata
	metadataErr   map[string]error
	metadataDelay map[string]time.Duration

	nfts    *entity.OwnedNFTList
	nftsErr error

	transfers    *entity.TransferList
	transfersErr error

	mu              sync.Mutex
	metadataCalls   map[string]int
	lastNetwork     entity.NetworkID
	lastTransferReq entity.TransferRequest

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeProvider) GetTokenBalances(_ context.Context, network entity.NetworkID, _ string) (*entity.TokenBalances, error) {
	f.mu.Lock()
	f.lastNetwork = network
	f.mu.Unlock()
	if f.balancesErr != nil {
		return nil, f.balancesErr
	}
	return f.balances, nil
}

func (f *fakeProvider) GetTokenMetadata(ctx context.Context, _ entity.NetworkID, contract string) (*entity.AssetMetadata, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxInFlight.Load()
		if current <= peak || f.maxInFlight.CompareAndSwap(peak, current) {
			break
		}
	}

	f.mu.Lock()
	if f.metadataCalls == nil {
		f.metadataCalls = make(map[string]int)
	}
	f.metadataCalls[contract]++
	f.mu.Unlock()

	if d := f.metadataDelay[contract]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, &entity.TransportError{Endpoint: "tokenMetadata", Err: ctx.Err()}
		}
	}
	if err := f.metadataErr[contract]; err != nil {
		return nil, err
	}
	return f.metadata[contract], nil
}

func (f *fakeProvider) GetNFTs(_ context.Context, network entity.NetworkID, _ string) (*entity.OwnedNFTList, error) {
	f.mu.Lock()
	f.lastNetwork = network
	f.mu.Unlock()
	if f.nftsErr != nil {
		return nil, f.nftsErr
	}
	return f.nfts, nil
}

func (f *fakeProvider) GetAssetTransfers(_ context.Context, network entity.NetworkID, req entity.TransferRequest) (*entity.TransferList, error) {
	f.mu.Lock()
	f.lastNetwork = network
	f.lastTransferReq = req
	f.mu.Unlock()
	if f.transfersErr != nil {
		return nil, f.transfersErr
	}
	return f.transfers, nil
}

func (f *fakeProvider) callsFor(contract string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metadataCalls[contract]
}

func decimals(d int32) *int32 { return &d }

func str(s string) *string { return &s }
