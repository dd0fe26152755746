package kernel_test

import (
	"testing"

	"jobmarket/internal/core/domain/model/kernel"
	"jobmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("should accept positive id", func(t *testing.T) {
		id, err := kernel.NewID(42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("should reject zero and negative ids", func(t *testing.T) {
		for _, raw := range []int64{0, -1, -100} {
			_, err := kernel.NewID(raw)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("zero value is unassigned", func(t *testing.T) {
		var id kernel.ID

		assert.True(t, id.IsZero())
		require.Error(t, id.Validate())
	})
}

func TestUUID(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		require.NoError(t, id1.Validate())
		assert.False(t, id1.IsEqual(id2))
	})

	t.Run("should round trip through its string form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
	})

	t.Run("should reject malformed and nil UUIDs", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)

		_, err = kernel.UUIDFromString("00000000-0000-0000-0000-000000000000")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should trim and keep all parts", func(t *testing.T) {
		addr, err := kernel.NewAddress(" Seoul ", "Jongno-gu", "Cheongun-dong\t")

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "Seoul", addr.City())
		assert.Equal(t, "Jongno-gu", addr.District())
		assert.Equal(t, "Cheongun-dong", addr.Neighborhood())
		assert.Equal(t, "Seoul Jongno-gu Cheongun-dong", addr.String())
	})

	t.Run("should report every blank part", func(t *testing.T) {
		_, err := kernel.NewAddress("", " ", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "city")
		assert.Contains(t, err.Error(), "district")
		assert.Contains(t, err.Error(), "neighborhood")
	})

	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewAddress("Seoul", "Jongno-gu", "Cheongun-dong")
		b, _ := kernel.NewAddress("Seoul", "Jongno-gu", "Cheongun-dong")
		c, _ := kernel.NewAddress("Seoul", "Jung-gu", "Myeong-dong")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		assert.Equal(t, kernel.ErrAddressIsNotConstructed, addr.Validate())
	})
}
