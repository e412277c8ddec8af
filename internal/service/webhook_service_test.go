package service

import (
	"errors"
	"testing"
	"time"

	"ddplanner_backend/internal/config"
	"ddplanner_backend/internal/model"
	"ddplanner_backend/internal/util"
)

func TestMapHotmartStatus(t *testing.T) {
	tests := []struct {
		status string
		want   model.SubscriptionStatus
	}{
		{"approved", model.SubscriptionActive},
		{"complete", model.SubscriptionActive},
		{"active", model.SubscriptionActive},
		{"APPROVED", model.SubscriptionActive},
		{"cancelled", model.SubscriptionCancelled},
		{"canceled", model.SubscriptionCancelled},
		{"refunded", model.SubscriptionRefunded},
		{"chargeback", model.SubscriptionRefunded},
		{"expired", model.SubscriptionExpired},
		{"something-else", model.SubscriptionActive},
		{"", model.SubscriptionActive},
	}

	for _, tt := range tests {
		if got := mapHotmartStatus(tt.status); got != tt.want {
			t.Errorf("mapHotmartStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPlanForOffer(t *testing.T) {
	svc := &WebhookService{
		Config: &config.Config{
			Hotmart: config.HotmartConfig{AnnualOfferCode: "kupajgzs"},
		},
	}

	if got := svc.planForOffer("kupajgzs"); got != model.PlanAnnual {
		t.Errorf("annual offer code = %v, want annual", got)
	}
	if got := svc.planForOffer("other"); got != model.PlanMonthly {
		t.Errorf("unknown offer code = %v, want monthly", got)
	}
	if got := svc.planForOffer(""); got != model.PlanMonthly {
		t.Errorf("empty offer code = %v, want monthly", got)
	}
}

func TestSubscriptionEnd(t *testing.T) {
	start := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	annual := subscriptionEnd(model.PlanAnnual, start)
	if annual.Year() != 2026 || annual.Month() != time.March || annual.Day() != 10 {
		t.Errorf("annual end = %v", annual)
	}

	monthly := subscriptionEnd(model.PlanMonthly, start)
	if monthly.Year() != 2025 || monthly.Month() != time.April || monthly.Day() != 10 {
		t.Errorf("monthly end = %v", monthly)
	}
}

func TestValidateWebhook(t *testing.T) {
	valid := &model.HotmartWebhook{
		Event: "PURCHASE_APPROVED",
		Data: model.HotmartWebhookData{
			Buyer:    model.HotmartBuyer{Email: "aluno@example.com"},
			Purchase: model.HotmartPurchase{Transaction: "HP1234"},
		},
	}
	if err := Validate(valid); err != nil {
		t.Errorf("Validate(valid) = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.HotmartWebhook)
	}{
		{"missing event", func(w *model.HotmartWebhook) { w.Event = "" }},
		{"missing email", func(w *model.HotmartWebhook) { w.Data.Buyer.Email = "" }},
		{"missing transaction", func(w *model.HotmartWebhook) { w.Data.Purchase.Transaction = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := *valid
			tt.mutate(&w)
			if err := Validate(&w); !errors.Is(err, util.ErrInvalidWebhook) {
				t.Errorf("Validate() = %v, want ErrInvalidWebhook", err)
			}
		})
	}

	if err := Validate(nil); !errors.Is(err, util.ErrInvalidWebhook) {
		t.Errorf("Validate(nil) = %v, want ErrInvalidWebhook", err)
	}
}

func TestDecodeWebhook(t *testing.T) {
	raw := []byte(`{"event":"PURCHASE_APPROVED","data":{"buyer":{"email":"aluno@example.com","name":"Aluno"},"purchase":{"transaction":"HP1234","offer":{"code":"kupajgzs"}}}}`)

	webhook, err := DecodeWebhook(raw)
	if err != nil {
		t.Fatalf("DecodeWebhook: %v", err)
	}
	if webhook.Event != "PURCHASE_APPROVED" {
		t.Errorf("Event = %q", webhook.Event)
	}
	if webhook.Data.Purchase.Offer.Code != "kupajgzs" {
		t.Errorf("Offer.Code = %q", webhook.Data.Purchase.Offer.Code)
	}

	if _, err := DecodeWebhook([]byte("not json")); !errors.Is(err, util.ErrInvalidWebhook) {
		t.Errorf("DecodeWebhook(bad) = %v, want ErrInvalidWebhook", err)
	}
}
