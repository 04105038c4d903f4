package emulator

type signInRequest struct {
	Token string `json:"token"`
}

type signInResponse struct {
	UserID  string `json:"userId"`
	IDToken string `json:"idToken"`
}

type insertRequest struct {
	Fields map[string]any `json:"fields"`
}

type updateRequest struct {
	Fields map[string]any `json:"fields"`
}

type insertResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type wireDocument struct {
	ID         string         `json:"id"`
	Fields     map[string]any `json:"fields"`
	CreateTime string         `json:"createTime"`
}

type wireSnapshot struct {
	Documents []wireDocument `json:"documents"`
}
