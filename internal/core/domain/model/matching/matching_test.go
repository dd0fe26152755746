package matching_test

import (
	"testing"
	"time"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/core/domain/model/matching"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T) *matching.Matching {
	t.Helper()

	m, err := matching.NewMatching(kernel.ID(7), kernel.ID(42))
	require.NoError(t, err)
	require.NoError(t, m.AssignIdentity(kernel.ID(1), time.Now()))
	return m
}

func TestNewMatching(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		m, err := matching.NewMatching(kernel.ID(7), kernel.ID(42))

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, kernel.ID(7), m.CustomerID())
		assert.Equal(t, kernel.ID(42), m.JobID())
		assert.Equal(t, matching.Pending, m.Status())
		assert.False(t, m.IsMatched())
		assert.False(t, m.IsRejected())
		assert.True(t, m.ID().IsZero())
	})

	t.Run("rejects missing references", func(t *testing.T) {
		m, err := matching.NewMatching(kernel.ID(0), kernel.ID(-1))

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "job")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var m matching.Matching

		require.ErrorIs(t, m.Validate(), matching.ErrMatchingIsNotConstructed)
	})
}

func TestMatching_AssignIdentity(t *testing.T) {
	m := newPending(t)

	err := m.AssignIdentity(kernel.ID(2), time.Now())

	require.ErrorIs(t, err, matching.ErrIdentityAlreadyAssigned)
	assert.Equal(t, kernel.ID(1), m.ID())
}

func TestMatching_Decisions(t *testing.T) {
	t.Run("accept sets matched only", func(t *testing.T) {
		m := newPending(t)

		require.NoError(t, m.Accept())

		assert.True(t, m.IsMatched())
		assert.False(t, m.IsRejected())
	})

	t.Run("reject sets rejected only", func(t *testing.T) {
		m := newPending(t)

		require.NoError(t, m.Reject())

		assert.False(t, m.IsMatched())
		assert.True(t, m.IsRejected())
	})

	t.Run("flags stay mutually exclusive for any decision sequence", func(t *testing.T) {
		sequences := [][]string{
			{"accept", "reject"},
			{"reject", "accept"},
			{"accept", "accept", "reject"},
			{"reject", "reject", "accept", "reject"},
		}

		for _, seq := range sequences {
			m := newPending(t)
			for i, step := range seq {
				var err error
				if step == "accept" {
					err = m.Accept()
				} else {
					err = m.Reject()
				}

				if i == 0 {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, matching.ErrAlreadyDecided)
				}
				assert.False(t, m.IsMatched() && m.IsRejected())
			}
			assert.Equal(t, seq[0] == "accept", m.IsMatched())
			assert.Equal(t, seq[0] == "reject", m.IsRejected())
		}
	})
}

func TestMatching_CheckApplicant(t *testing.T) {
	m := newPending(t)

	require.NoError(t, m.CheckApplicant(kernel.ID(7)))

	err := m.CheckApplicant(kernel.ID(8))
	require.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Contains(t, err.Error(), "matching 1")
}

func TestRestoreMatching(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("restores a decided matching", func(t *testing.T) {
		m, err := matching.RestoreMatching(matching.Snapshot{
			ID:         kernel.ID(3),
			CustomerID: kernel.ID(7),
			JobID:      kernel.ID(42),
			Rejected:   true,
			CreatedAt:  created,
		})

		require.NoError(t, err)
		assert.Equal(t, matching.Rejected, m.Status())
		assert.Equal(t, created, m.CreatedAt())
		require.ErrorIs(t, m.Accept(), matching.ErrAlreadyDecided)
	})

	t.Run("refuses a row with both flags set", func(t *testing.T) {
		_, err := matching.RestoreMatching(matching.Snapshot{
			ID:         kernel.ID(3),
			CustomerID: kernel.ID(7),
			JobID:      kernel.ID(42),
			Matched:    true,
			Rejected:   true,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("refuses a missing id", func(t *testing.T) {
		_, err := matching.RestoreMatching(matching.Snapshot{CustomerID: kernel.ID(7), JobID: kernel.ID(42)})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
