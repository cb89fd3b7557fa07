package params

type LoginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// CustomErrorParams 让后端按指定 code/msg 返回错误，用于联调错误处理
type CustomErrorParams struct {
	Code *string `query:"code,omitempty"`
	Msg  *string `query:"msg,omitempty"`
}
