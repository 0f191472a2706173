package api

// Session represents the POST /api/auth/login response. MFAKey is only
// set when the account requires multi-factor auth; APIKey is only set
// when it does not.
type Session struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	MFAEnabled bool    `json:"mfa_enabled"`
	MFAKey     *string `json:"mfa_key"`
	APIKey     *string `json:"api_key"`
}

// UserInfo represents the GET /api/user_info response.
type UserInfo struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	IsPremium         bool    `json:"is_premium"`
	InTrial           bool    `json:"in_trial"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	MaxAliasFreePlan  *int    `json:"max_alias_free_plan"`
}

// AliasMailbox is the abbreviated mailbox record embedded in an Alias.
type AliasMailbox struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// Alias represents a forwarding address owned by the account.
type Alias struct {
	ID        int            `json:"id"`
	Email     string         `json:"email"`
	Enabled   bool           `json:"enabled"`
	Mailboxes []AliasMailbox `json:"mailboxes"`
	Name      *string        `json:"name"`
	Note      *string        `json:"note"`
}

// Mailbox represents a real destination address on the account.
type Mailbox struct {
	ID                int    `json:"id"`
	Email             string `json:"email"`
	Default           bool   `json:"default"`
	CreationTimestamp int64  `json:"creation_timestamp"`
	NbAlias           int    `json:"nb_alias"`
	Verified          bool   `json:"verified"`
}

// AliasMode selects how the server names a random alias.
type AliasMode string

const (
	// AliasModeUUID names the alias with a UUID.
	AliasModeUUID AliasMode = "uuid"
	// AliasModeWord names the alias with dictionary words.
	AliasModeWord AliasMode = "word"
)

// CreateAliasParams are the parameters for POST /api/v3/alias/custom/new.
// The signed suffix is issued by the server and authorizes creation on
// its domain.
type CreateAliasParams struct {
	AliasPrefix  string `json:"alias_prefix"`
	SignedSuffix string `json:"signed_suffix"`
	MailboxIDs   []int  `json:"mailbox_ids"`
	Note         string `json:"note,omitempty"`
	Name         string `json:"name,omitempty"`
}

// RandomAliasParams are the parameters for POST /api/alias/random/new.
// Zero values are omitted from the request.
type RandomAliasParams struct {
	Hostname string
	Mode     AliasMode
	Note     string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Device   string `json:"device"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type activateRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type apiKeyRequest struct {
	Device string `json:"device"`
}

type apiKeyResponse struct {
	APIKey string `json:"api_key"`
}

type randomAliasRequest struct {
	Note string `json:"note,omitempty"`
}

type aliasesResponse struct {
	Aliases []Alias `json:"aliases"`
}

type mailboxesResponse struct {
	Mailboxes []Mailbox `json:"mailboxes"`
}
