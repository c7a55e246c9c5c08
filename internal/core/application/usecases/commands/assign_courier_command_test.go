package commands_test

import (
	"testing"

	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignCourierCommand(t *testing.T) {
	t.Run("should create command with valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewAssignCourierCommand(orderID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
	})

	t.Run("should reject zero order id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewAssignCourierCommand(zeroID)

		require.Error(t, err)
	})

	t.Run("should reject command not created via constructor", func(t *testing.T) {
		var cmd commands.AssignCourierCommand

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrAssignCourierCommandIsNotConstructed)
	})
}
