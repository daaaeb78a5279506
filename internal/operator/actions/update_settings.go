package actions

import (
	"context"

	"github.com/carson-networks/compta-server/internal/storage"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

// UpdateSettings reads the settings inside the unit of work, lets Apply edit
// them and saves the result. Apply errors abort without saving. Result holds
// the saved settings after a successful Perform.
type UpdateSettings struct {
	Apply func(settings *table.Settings) error

	Result *table.Settings
}

func (u *UpdateSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	settings, err := writer.Settings.Load(ctx)
	if err != nil {
		return err
	}
	if err := u.Apply(settings); err != nil {
		return err
	}
	if err := writer.Settings.Save(ctx, settings); err != nil {
		return err
	}
	u.Result = settings
	return nil
}
