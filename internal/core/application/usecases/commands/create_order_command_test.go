package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusrun/internal/core/application/usecases/commands"
	"campusrun/internal/pkg/errs"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			10, "Canteen 2", "Dorm 3", "bubble tea",
			mustMoney(t, 25), mustMoney(t, 5),
			commands.CreateOrderExtras{PickupCode: "A-17"},
		)
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.Equal(t, uint64(10), cmd.UserID())
		assert.Equal(t, "Canteen 2", cmd.StartAddress())
		assert.Equal(t, "Dorm 3", cmd.EndAddress())
		assert.Equal(t, "A-17", cmd.Extras().PickupCode)
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			0, "Canteen 2", "Dorm 3", "bubble tea",
			mustMoney(t, 25), mustMoney(t, 5),
			commands.CreateOrderExtras{},
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires both route endpoints", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			10, "", "Dorm 3", "bubble tea",
			mustMoney(t, 25), mustMoney(t, 5),
			commands.CreateOrderExtras{},
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = commands.NewCreateOrderCommand(
			10, "Canteen 2", "", "bubble tea",
			mustMoney(t, 25), mustMoney(t, 5),
			commands.CreateOrderExtras{},
		)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
