package types

import "time"

// User represents the authenticated navigator staff user
type User struct {
	ID              string     `json:"_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	Role            string     `json:"role,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

// AuthToken is the token pair returned by the login endpoint
type AuthToken struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	TokenType    string `json:"tokenType,omitempty"`
	ExpiresIn    int64  `json:"expiresIn,omitempty"`
}

// LoginResponse is the normalized login result
type LoginResponse struct {
	Token AuthToken `json:"token"`
	User  User      `json:"user"`
}

// MediaAsset is a hosted file returned by the media upload endpoint
type MediaAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId,omitempty"`
	FileName string `json:"fileName,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// BulkUploadReport summarizes a members bulk upload
type BulkUploadReport struct {
	TotalRows int      `json:"totalRows"`
	Created   int      `json:"created"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}
