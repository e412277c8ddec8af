package model

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionRefunded  SubscriptionStatus = "refunded"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "monthly"
	PlanAnnual  SubscriptionPlan = "annual"
)

// swagger:model Subscription
type Subscription struct {
	BaseModel
	UserID        uint               `gorm:"index;not null" json:"userId"`
	Plan          SubscriptionPlan   `gorm:"type:enum('monthly','annual');default:'monthly'" json:"plan"`
	Status        SubscriptionStatus `gorm:"type:enum('active','cancelled','refunded','expired');default:'active'" json:"status"`
	TransactionID string             `gorm:"size:100;uniqueIndex" json:"transactionId"`
	OfferCode     string             `gorm:"size:50" json:"offerCode"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// Active reports whether the subscription still grants access.
func (s *Subscription) Active(now time.Time) bool {
	return s.Status == SubscriptionActive && now.Before(s.EndDate)
}

// swagger:model WebhookLog
type WebhookLog struct {
	BaseModel
	Event         string `gorm:"size:100;index" json:"event"`
	TransactionID string `gorm:"size:100;index" json:"transactionId"`
	BuyerEmail    string `gorm:"size:100" json:"buyerEmail"`
	Payload       string `gorm:"type:text" json:"-"`
	Processed     bool   `gorm:"default:false" json:"processed"`
	ErrorMessage  string `gorm:"size:500" json:"errorMessage,omitempty"`
}

func (WebhookLog) TableName() string {
	return "webhook_logs"
}

// HotmartWebhook is the inbound payload shape posted by Hotmart.
type HotmartWebhook struct {
	Event string             `json:"event"`
	Data  HotmartWebhookData `json:"data"`
}

type HotmartWebhookData struct {
	Buyer        HotmartBuyer        `json:"buyer"`
	Purchase     HotmartPurchase     `json:"purchase"`
	Subscription HotmartSubscription `json:"subscription"`
}

type HotmartBuyer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type HotmartPurchase struct {
	Transaction string       `json:"transaction"`
	Offer       HotmartOffer `json:"offer"`
	Status      string       `json:"status"`
}

type HotmartOffer struct {
	Code string `json:"code"`
}

type HotmartSubscription struct {
	Status string `json:"status"`
	Plan   struct {
		Name string `json:"name"`
	} `json:"plan"`
}
