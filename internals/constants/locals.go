package constants

// Key c.Locals yang diisi middleware dan dibaca controller.
const (
	LocalRequestID   = "reqid"
	LocalUserID      = "user_id"
	LocalRole        = "userRole"
	LocalUserName    = "user_name"
	LocalAccessToken = "access_token"
	LocalTokenJTI    = "token_jti"
)
