package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOrderNumberFormat(t *testing.T) {
	env := newTestEnv(t)

	var number string
	err := env.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		number, err = env.Numbers.Next(tx)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("DL-%d-000001", time.Now().Year()), number)
}

func TestOrderNumberSequenceNeverRepeats(t *testing.T) {
	env := newTestEnv(t)

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		err := env.DB.Transaction(func(tx *gorm.DB) error {
			n, err := env.Numbers.Next(tx)
			if err != nil {
				return err
			}
			require.False(t, seen[n], "duplicate order number %s", n)
			seen[n] = true
			return nil
		})
		require.NoError(t, err)
	}
	require.Len(t, seen, 25)
	require.True(t, seen[fmt.Sprintf("DL-%d-000025", time.Now().Year())])
}

func TestOrderNumberSequenceSurvivesRollback(t *testing.T) {
	env := newTestEnv(t)

	// consume one inside a transaction that commits
	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		_, err := env.Numbers.Next(tx)
		return err
	}))

	// a rolled-back checkout may leave a gap; it must never cause a repeat
	boom := fmt.Errorf("boom")
	err := env.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := env.Numbers.Next(tx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var next string
	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		next, err = env.Numbers.Next(tx)
		return err
	}))
	require.NotEqual(t, fmt.Sprintf("DL-%d-000001", time.Now().Year()), next)
}
