package model

// Role is the function a package fulfils in a staker setup.
type Role string

const (
	Execution Role = "execution"
	Consensus Role = "consensus"
	MevBoost  Role = "mev-boost"
	Signer    Role = "signer"
)

// Roles lists every staker role.
var Roles = []Role{Execution, Consensus, MevBoost, Signer}

// ItemStatus discriminates the variants of a StakerItem.
//
// The staker service reports StatusOk or StatusError only. A missing or
// stopped package is StatusOk with the matching Is* flag cleared. The other
// variants are accepted from other backends and never count as active.
type ItemStatus string

const (
	// StatusOk means the package data is known; the Is* flags are meaningful.
	StatusOk ItemStatus = "ok"
	// StatusNotInstalled means the package is not installed on the host.
	StatusNotInstalled ItemStatus = "not-installed"
	// StatusNotRunning means the package is installed but its containers are stopped.
	StatusNotRunning ItemStatus = "not-running"
	// StatusNotSelected means the package is not part of the current selection.
	StatusNotSelected ItemStatus = "not-selected"
	// StatusError means the backend could not inspect the package; Error holds the reason.
	StatusError ItemStatus = "error"
)

// StakerItemData is package metadata shown next to a staker choice.
type StakerItemData struct {
	Name             string `json:"name"`
	Version          string `json:"version,omitempty"`
	Description      string `json:"description,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
}

// StakerItem describes one candidate package for a role on a network.
//
// Identity is (Network, Role, DnpName). The boolean flags are only
// meaningful when Status is StatusOk.
type StakerItem struct {
	Network Network    `json:"network"`
	Role    Role       `json:"role"`
	DnpName string     `json:"dnpName" validate:"required"`
	Status  ItemStatus `json:"status"`

	AvatarURL   string `json:"avatarUrl,omitempty"`
	IsInstalled bool   `json:"isInstalled"`
	IsRunning   bool   `json:"isRunning"`
	IsSelected  bool   `json:"isSelected"`
	IsUpdated   bool   `json:"isUpdated"`

	Error string          `json:"error,omitempty"`
	Data  *StakerItemData `json:"data,omitempty"`
}

// SameDnp reports whether two optional items refer to the same package.
// Two nil items are the same; a nil and a non-nil item are not.
func SameDnp(a, b *StakerItem) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.DnpName == b.DnpName
}

func (i *StakerItem) withoutData() *StakerItem {
	if i == nil {
		return nil
	}
	cp := *i
	cp.Data = nil
	return &cp
}
