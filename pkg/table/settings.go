package table

import "fmt"

// MinPlayers is the fewest connected players needed to start a hand
const MinPlayers = 2

// MaxPlayersLimit is the largest table size allowed
const MaxPlayersLimit = 8

// MaxChips is the largest balance a player can hold
const MaxChips = 1000000000

// Settings are the host-configurable options for a table
type Settings struct {
	InitialBalance   int `json:"initialBalance" yaml:"initialBalance"`
	InitialBetAmount int `json:"initialBetAmount" yaml:"initialBetAmount"`
	MaxPlayers       int `json:"maxPlayers" yaml:"maxPlayers"`
	// HostDeclaresWinners holds the hand open at showdown until the host names the winners
	HostDeclaresWinners bool `json:"hostDeclaresWinners" yaml:"hostDeclaresWinners"`
}

// DefaultSettings returns the settings used when the host does not supply any
func DefaultSettings() Settings {
	return Settings{
		InitialBalance:   1000,
		InitialBetAmount: 10,
		MaxPlayers:       MaxPlayersLimit,
	}
}

// Validate ensures the settings can be used to run a table
func (s Settings) Validate() error {
	if s.InitialBalance <= 0 {
		return fmt.Errorf("%w: initial balance must be greater than zero", ErrInvalidSettings)
	}

	if s.InitialBalance > MaxChips {
		return fmt.Errorf("%w: initial balance cannot be greater than %d", ErrInvalidSettings, MaxChips)
	}

	if s.InitialBetAmount <= 0 {
		return fmt.Errorf("%w: initial bet amount must be greater than zero", ErrInvalidSettings)
	}

	if s.InitialBetAmount >= s.InitialBalance {
		return fmt.Errorf("%w: initial bet amount must be less than the initial balance", ErrInvalidSettings)
	}

	if s.MaxPlayers < MinPlayers || s.MaxPlayers > MaxPlayersLimit {
		return fmt.Errorf("%w: max players must be between %d and %d", ErrInvalidSettings, MinPlayers, MaxPlayersLimit)
	}

	return nil
}

// SmallBlind is the base unit for the blind tier
func (s Settings) SmallBlind() int {
	return s.InitialBetAmount
}

// BigBlind is the base unit for the seen tier
func (s Settings) BigBlind() int {
	return s.InitialBetAmount * 2
}

// SettingsPatch is a partial update to Settings
// A nil field leaves the current value untouched
type SettingsPatch struct {
	InitialBalance      *int  `json:"initialBalance,omitempty"`
	InitialBetAmount    *int  `json:"initialBetAmount,omitempty"`
	MaxPlayers          *int  `json:"maxPlayers,omitempty"`
	HostDeclaresWinners *bool `json:"hostDeclaresWinners,omitempty"`
}

// Apply returns a copy of the settings with the patch applied
func (s Settings) Apply(patch SettingsPatch) Settings {
	if patch.InitialBalance != nil {
		s.InitialBalance = *patch.InitialBalance
	}

	if patch.InitialBetAmount != nil {
		s.InitialBetAmount = *patch.InitialBetAmount
	}

	if patch.MaxPlayers != nil {
		s.MaxPlayers = *patch.MaxPlayers
	}

	if patch.HostDeclaresWinners != nil {
		s.HostDeclaresWinners = *patch.HostDeclaresWinners
	}

	return s
}

// ChangesBet returns true if applying the patch changes the bet unit
func (s Settings) ChangesBet(patch SettingsPatch) bool {
	return patch.InitialBetAmount != nil && *patch.InitialBetAmount != s.InitialBetAmount
}
