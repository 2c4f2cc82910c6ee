package cactive

// NicknameHistory is one nickname usage entry returned by the
// nickname history endpoint.
type NicknameHistory struct {
	UUID      string `json:"uuid"`
	Nickname  string `json:"nickname"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	VoidedAt  string `json:"voided_at"`
}

// PlayerData aggregates all the data known for a player.
type PlayerData struct {
	UUID            string           `json:"uuid"`
	NicknameHistory []PlayerNickname `json:"nickname_history"`
	Infractions     []Infraction     `json:"infractions"`
	Tracker         Tracker          `json:"tracker"`
	// IPHistory is only set for keys allowed to view it.
	IPHistory []IPSession `json:"ip_history,omitempty"`
}

// PlayerNickname is a nickname entry within player data.
type PlayerNickname struct {
	Nickname  string  `json:"nickname"`
	Active    *bool   `json:"active"`
	CreatedAt string  `json:"created_at"`
	VoidedAt  *string `json:"voided_at"`
}

// Infraction is a punishment entry within player data.
type Infraction struct {
	ID             string  `json:"id"`
	PunishmentType string  `json:"punishment_type"`
	Executor       *string `json:"executor"`
	Reason         string  `json:"reason"`
	// Length is in seconds and nil for permanent punishments.
	Length *uint32 `json:"length"`
}

// Tracker is the last known network position of a player.
type Tracker struct {
	Server    *string `json:"server"`
	Map       *string `json:"map"`
	Proxy     *string `json:"proxy"`
	LastLogin *string `json:"last_login"`
}

// IPSession is one connection session within player data.
type IPSession struct {
	IP              string  `json:"ip"`
	LoginAt         string  `json:"login_at"`
	LogoutAt        *string `json:"logout_at"`
	ConnectionProxy *string `json:"connection_proxy"`
}

// StaffMember is one entry returned by the staff tracker endpoint.
type StaffMember struct {
	UUID   string `json:"uuid"`
	Rank   string `json:"rank"`
	Online *bool  `json:"online"`
}

// PunishmentData is the detail of a single punishment.
type PunishmentData struct {
	ID             string  `json:"id"`
	PunishmentType string  `json:"punishment_type"`
	UUID           string  `json:"uuid"`
	Executor       *string `json:"executor"`
	Reason         string  `json:"reason"`
	Length         *uint32 `json:"length"`
}

// KeyData describes an API key and the endpoints it can reach.
type KeyData struct {
	Key                       string        `json:"key"`
	Valid                     bool          `json:"valid"`
	Active                    bool          `json:"active"`
	CreatedAt                 *string       `json:"created_at"`
	ExpiresAt                 *string       `json:"expires_at"`
	OwnerCactiveConnectionsID *string       `json:"owner_cactiveconnections_id"`
	Endpoints                 []KeyEndpoint `json:"endpoints"`
}

// KeyEndpoint is the status of one endpoint for a key.
type KeyEndpoint struct {
	ID      string `json:"id"`
	Version int8   `json:"version"`
	Status  bool   `json:"status"`
}
