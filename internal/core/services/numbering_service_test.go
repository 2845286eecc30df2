package services_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/services"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCounterRepository is an in-memory stand-in for the document counter
// store, with the same atomicity guarantee provided by a mutex.
type memoryCounterRepository struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newMemoryCounterRepository() *memoryCounterRepository {
	return &memoryCounterRepository{counters: make(map[string]int64)}
}

func (r *memoryCounterRepository) NextNumber(_ context.Context, companyID, series string, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := fmt.Sprintf("%s|%s|%d", companyID, series, year)
	r.counters[key]++
	return r.counters[key], nil
}

func (r *memoryCounterRepository) NextNumberInTx(ctx context.Context, _ pgx.Tx, companyID, series string, year int) (int64, error) {
	return r.NextNumber(ctx, companyID, series, year)
}

func (r *memoryCounterRepository) PeekNumber(_ context.Context, companyID, series string, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counters[fmt.Sprintf("%s|%s|%d", companyID, series, year)], nil
}

func TestGenerateNumber_Format(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	first, err := svc.GenerateNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000001", first)

	second, err := svc.GenerateNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000002", second)
}

func TestGenerateNumber_IndependentSequences(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	otherCompany := uuid.NewString()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	_, err := svc.GenerateNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)

	// A different series, year or company starts its own sequence at 1.
	n, err := svc.GenerateNumber(ctx, companyID, "CUM", 2025)
	require.NoError(t, err)
	assert.Equal(t, "CUM/2025/000001", n)

	n, err = svc.GenerateNumber(ctx, companyID, "VAN", 2026)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2026/000001", n)

	n, err = svc.GenerateNumber(ctx, otherCompany, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000001", n)
}

func TestGenerateNumber_MissingKey(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	_, err := svc.GenerateNumber(ctx, "", "VAN", 2025)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.GenerateNumber(ctx, uuid.NewString(), "", 2025)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

type failingCounterRepository struct{}

func (failingCounterRepository) NextNumber(context.Context, string, string, int) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingCounterRepository) NextNumberInTx(context.Context, pgx.Tx, string, string, int) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingCounterRepository) PeekNumber(context.Context, string, string, int) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestGenerateNumber_AllocationFailure(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNumberingService(failingCounterRepository{})

	n, err := svc.GenerateNumber(ctx, uuid.NewString(), "VAN", 2025)

	// The allocator must fail loudly, never hand out a fabricated number.
	assert.ErrorIs(t, err, apperrors.ErrNumbering)
	assert.Empty(t, n)
}

func TestPreviewNextNumber_DoesNotConsume(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	preview, err := svc.PreviewNextNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000001", preview)

	// Previewing again yields the same number: nothing was allocated.
	preview, err = svc.PreviewNextNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000001", preview)

	allocated, err := svc.GenerateNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000001", allocated)

	preview, err = svc.PreviewNextNumber(ctx, companyID, "VAN", 2025)
	require.NoError(t, err)
	assert.Equal(t, "VAN/2025/000002", preview)
}

func TestPreviewNextNumber_Validation(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	_, err := svc.PreviewNextNumber(ctx, "", "VAN", 2025)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.PreviewNextNumber(ctx, uuid.NewString(), "", 2025)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPreviewNextNumber_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNumberingService(failingCounterRepository{})

	n, err := svc.PreviewNextNumber(ctx, uuid.NewString(), "VAN", 2025)

	assert.ErrorIs(t, err, apperrors.ErrNumbering)
	assert.Empty(t, n)
}

func TestGenerateNumber_ConcurrentAllocationsAreGapFree(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	svc := services.NewNumberingService(newMemoryCounterRepository())

	const goroutines = 100

	var wg sync.WaitGroup
	results := make([]string, goroutines)
	errs := make([]error, goroutines)

	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.GenerateNumber(ctx, companyID, "GEN", 2025)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "allocation %d failed", i)
	}

	// All numbers distinct, and together they form the contiguous range
	// 1..goroutines: no duplicates, no gaps.
	seen := make(map[string]bool, goroutines)
	for _, n := range results {
		assert.False(t, seen[n], "number %s allocated twice", n)
		seen[n] = true
	}
	for i := 1; i <= goroutines; i++ {
		expected := fmt.Sprintf("GEN/2025/%06d", i)
		assert.True(t, seen[expected], "number %s missing from allocations", expected)
	}
}
