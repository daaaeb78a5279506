package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() Registry {
	return Registry{
		Current:     []string{"Main", "Joint"},
		Saving:      []string{"Livret A", "PEL"},
		SavingLinks: SavingLinks{"Livret A": "Joint"},
	}
}

// -- Links --

func TestRegistry_LinkForDefaultsToFirstCurrent(t *testing.T) {
	reg := testRegistry()

	assert.Equal(t, "Joint", reg.LinkFor("Livret A"))
	assert.Equal(t, "Main", reg.LinkFor("PEL"))
	assert.Equal(t, "Main", reg.LinkFor("Deleted saving"))
}

func TestRegistry_EffectiveLinks(t *testing.T) {
	links := testRegistry().EffectiveLinks()

	assert.Equal(t, SavingLinks{"Livret A": "Joint", "PEL": "Main"}, links)
}

func TestRegistry_Normalize(t *testing.T) {
	reg := Registry{
		Current:     []string{" ", "Main", "Main"},
		Saving:      nil,
		SavingLinks: SavingLinks{"": "Main", "PEL": ""},
	}.Normalize()

	assert.Equal(t, []string{"Main"}, reg.Current)
	assert.Empty(t, reg.Saving)
	assert.Empty(t, reg.SavingLinks)

	empty := Registry{}.Normalize()
	assert.Equal(t, []string{DefaultCurrentAccount}, empty.Current)
}

// -- Editing --

func TestRegistry_AddAccounts(t *testing.T) {
	reg, err := testRegistry().AddCurrent("  Business ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Main", "Joint", "Business"}, reg.Current)

	reg, err = reg.AddSaving("LDDS")
	require.NoError(t, err)
	assert.Equal(t, []string{"Livret A", "PEL", "LDDS"}, reg.Saving)

	_, err = reg.AddCurrent("")
	assert.ErrorIs(t, err, ErrEmptyAccountName)
	_, err = reg.AddSaving("Main")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegistry_AddDoesNotMutateReceiver(t *testing.T) {
	original := testRegistry()
	_, err := original.AddSaving("LDDS")
	require.NoError(t, err)

	assert.Equal(t, []string{"Livret A", "PEL"}, original.Saving)
}

func TestRegistry_RenameCurrentMovesLinks(t *testing.T) {
	reg, err := testRegistry().RenameCurrent("Joint", "Shared")
	require.NoError(t, err)

	assert.Equal(t, []string{"Main", "Shared"}, reg.Current)
	assert.Equal(t, "Shared", reg.SavingLinks["Livret A"])

	_, err = reg.RenameCurrent("Nope", "Other")
	assert.ErrorIs(t, err, ErrUnknownAccount)
	_, err = reg.RenameCurrent("Main", "PEL")
	assert.ErrorIs(t, err, ErrDuplicateAccount)
}

func TestRegistry_RenameSavingMovesLinkKey(t *testing.T) {
	reg, err := testRegistry().RenameSaving("Livret A", "Livret Bleu")
	require.NoError(t, err)

	assert.Equal(t, []string{"Livret Bleu", "PEL"}, reg.Saving)
	assert.Equal(t, SavingLinks{"Livret Bleu": "Joint"}, reg.SavingLinks)
}

func TestRegistry_DeleteCurrentReassignsLinks(t *testing.T) {
	reg, err := testRegistry().DeleteCurrent("Joint")
	require.NoError(t, err)

	assert.Equal(t, []string{"Main"}, reg.Current)
	assert.Equal(t, "Main", reg.SavingLinks["Livret A"])

	_, err = reg.DeleteCurrent("Main")
	assert.ErrorIs(t, err, ErrLastCurrentAccount)
}

func TestRegistry_DeleteSavingDropsLink(t *testing.T) {
	reg, err := testRegistry().DeleteSaving("Livret A")
	require.NoError(t, err)

	assert.Equal(t, []string{"PEL"}, reg.Saving)
	assert.NotContains(t, reg.SavingLinks, "Livret A")

	_, err = reg.DeleteSaving("Livret A")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}

func TestRegistry_Link(t *testing.T) {
	reg, err := testRegistry().Link("PEL", "Joint")
	require.NoError(t, err)
	assert.Equal(t, "Joint", reg.LinkFor("PEL"))

	_, err = reg.Link("PEL", "Ghost")
	assert.ErrorIs(t, err, ErrUnknownAccount)
	_, err = reg.Link("Ghost", "Main")
	assert.ErrorIs(t, err, ErrUnknownAccount)
}
