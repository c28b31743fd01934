package dto

type CardDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

type CheckoutRequest struct {
	PlanType string      `json:"plan_type"`
	Card     CardDetails `json:"card"`
}

type CheckoutResponse struct {
	TransactionID string `json:"transaction_id"`
	PlanType      string `json:"plan_type"`
	IsPremium     bool   `json:"is_premium"`
}

// WidgetConfigResponse is the support-chat embed configuration handed to
// premium clients. The widget itself is a third-party script; the backend
// only gates access and supplies its settings.
type WidgetConfigResponse struct {
	BotID       string `json:"bot_id"`
	ClientID    string `json:"client_id"`
	Color       string `json:"color"`
	FontFamily  string `json:"font_family"`
	ButtonLabel string `json:"button_label"`
}
