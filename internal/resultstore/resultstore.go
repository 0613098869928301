// Package resultstore persists analysis results and run history.
package resultstore

import (
	"sync"

	"github.com/farescope/farescope/internal/contract"
)

// ResultStoreManager manages the result cache and run history stores.
type ResultStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	result       contract.ResultStore
	runs         contract.RunStore
}

var _ contract.StoreManager = &ResultStoreManager{} // Compile-time check

// GetResultStore returns the result cache ResultStore.
func (mgr *ResultStoreManager) GetResultStore() contract.ResultStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.result
}

// GetRunStore returns the run history RunStore.
func (mgr *ResultStoreManager) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
