// Package crmsdk holds the wire types for the clientmap API plus a small
// HTTP client for integration tests and other Go consumers.
package crmsdk

// Timestamps on the wire are milliseconds since epoch, matching what the
// store persists.

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is returned by login and refresh. ExpiresIn is the access
// token lifetime in seconds.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirmRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

// ClientRecord is the wire form of one client entry. Lat and Lng are present
// together or absent together.
type ClientRecord struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat,omitempty"`
	Lng       *float64 `json:"lng,omitempty"`
	Notes     string   `json:"notes"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// CreateClientRequest accepts coordinates as text so comma decimals survive
// the trip from a form field. FullName is an alternative to the split name
// fields; when set it is split on the final space.
type CreateClientRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Lat       string `json:"lat,omitempty"`
	Lng       string `json:"lng,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// UpdateClientRequest is a partial update: nil fields are left untouched.
// Supplying lat and lng applies the pair atomically; supplying them empty or
// unparsable clears the position.
type UpdateClientRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	Lat       *string `json:"lat,omitempty"`
	Lng       *string `json:"lng,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ListClientsQuery mirrors the query parameters of the list endpoint.
type ListClientsQuery struct {
	Search   string
	Location string
	Sort     string
	Page     int
}

type ListClientsResponse struct {
	Items      []ClientRecord `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	Total      int            `json:"total"`
	RangeStart int            `json:"range_start"`
	RangeEnd   int            `json:"range_end"`
}

type ImportReport struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

type NormalizeReport struct {
	Updated int `json:"updated"`
}

type StatsResponse struct {
	Total           int `json:"total"`
	WithLocation    int `json:"with_location"`
	WithoutLocation int `json:"without_location"`
}

type MapPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type MapMarker struct {
	ID        string   `json:"id"`
	Pos       MapPoint `json:"pos"`
	Icon      string   `json:"icon"`
	Popup     string   `json:"popup"`
	Draggable bool     `json:"draggable"`
}

type MapCluster struct {
	Pos     MapPoint    `json:"pos"`
	Count   int         `json:"count"`
	Markers []MapMarker `json:"markers"`
}

type MapCamera struct {
	Center  MapPoint `json:"center"`
	Zoom    int      `json:"zoom"`
	Animate bool     `json:"animate"`
}

type MapStateResponse struct {
	Markers  []MapMarker  `json:"markers"`
	Clusters []MapCluster `json:"clusters"`
	FlyTo    *MapCamera   `json:"fly_to,omitempty"`
	Zoom     int          `json:"zoom"`
}
