package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/scalable_parking/internal/core/domain"
	"github.com/srgjo27/scalable_parking/internal/core/ports"
	"github.com/srgjo27/scalable_parking/internal/platform/monitoring"
)

const (
	timestampLayout = "20060102150405"
	tokenPath       = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath     = "/mpesa/stkpush/v1/processrequest"
)

var _ ports.PaymentGateway = (*Daraja)(nil)

type DarajaConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	Shortcode      string
	Passkey        string
	CallbackURL    string
	Timeout        time.Duration
}

func (c DarajaConfig) Validate() error {
	var missing []string
	for name, v := range map[string]string{
		"base url":        c.BaseURL,
		"consumer key":    c.ConsumerKey,
		"consumer secret": c.ConsumerSecret,
		"shortcode":       c.Shortcode,
		"passkey":         c.Passkey,
		"callback url":    c.CallbackURL,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("live payment mode is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Daraja initiates STK push payments against the Safaricom API.
type Daraja struct {
	cfg DarajaConfig
	hc  *http.Client
	now func() time.Time

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

func NewDaraja(cfg DarajaConfig, hc *http.Client) *Daraja {
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Daraja{cfg: cfg, hc: hc, now: time.Now}
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

func (d *Daraja) Initiate(ctx context.Context, address string, amount int64, bookingID string) (string, error) {
	started := time.Now()
	id, err := d.initiate(ctx, address, amount, bookingID)
	monitoring.TrackGatewayCall(ModeLive, "stk_push", started, err)
	return id, err
}

func (d *Daraja) initiate(ctx context.Context, address string, amount int64, bookingID string) (string, error) {
	phone, err := NormalizePhone(address)
	if err != nil {
		log.Printf("invalid phone number for booking %s: %q", bookingID, address)
		return "", err
	}

	token, err := d.token(ctx)
	if err != nil {
		return "", err
	}

	timestamp := d.now().Format(timestampLayout)
	payload := stkPushRequest{
		BusinessShortCode: d.cfg.Shortcode,
		Password:          Password(d.cfg.Shortcode, d.cfg.Passkey, timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            phone,
		PartyB:            d.cfg.Shortcode,
		PhoneNumber:       phone,
		CallBackURL:       d.cfg.CallbackURL,
		AccountReference:  "Booking" + bookingID,
		TransactionDesc:   "Parking booking " + bookingID,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: encode stk push: %v", domain.ErrGateway, err)
	}

	url := d.cfg.BaseURL + stkPushPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: build stk push request: %v", domain.ErrGateway, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	log.Printf("sending stk push to %s (booking %s, amount %d) via %s", phone, bookingID, amount, url)
	resp, err := d.hc.Do(req)
	if err != nil {
		log.Printf("stk push request for booking %s failed: %v", bookingID, err)
		return "", fmt.Errorf("%w: stk push: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	rbody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	log.Printf("stk push response for booking %s: status %d, body %s", bookingID, resp.StatusCode, rbody)

	if resp.StatusCode == http.StatusUnauthorized {
		d.resetToken()
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: stk push returned %d: %s", domain.ErrGateway, resp.StatusCode, rbody)
	}

	var reply stkPushResponse
	if err := json.Unmarshal(rbody, &reply); err != nil {
		return "", fmt.Errorf("%w: decode stk push response: %v", domain.ErrGateway, err)
	}

	switch {
	case reply.CheckoutRequestID != "":
		return reply.CheckoutRequestID, nil
	case reply.MerchantRequestID != "":
		return reply.MerchantRequestID, nil
	}

	fallback := fmt.Sprintf("STK_%s_%s", bookingID, strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	log.Printf("stk push response for booking %s carried no request id, using %s", bookingID, fallback)
	return fallback, nil
}

// token returns the cached OAuth token, refreshing it 10s before it expires.
func (d *Daraja) token(ctx context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.accessToken != "" && d.now().Before(d.expiresAt.Add(-10*time.Second)) {
		return d.accessToken, nil
	}

	url := d.cfg.BaseURL + tokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build token request: %v", domain.ErrGateway, err)
	}
	req.SetBasicAuth(d.cfg.ConsumerKey, d.cfg.ConsumerSecret)

	resp, err := d.hc.Do(req)
	if err != nil {
		log.Printf("failed to fetch oauth token from %s: %v", url, err)
		return "", fmt.Errorf("%w: oauth token: %v", domain.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		rbody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		log.Printf("oauth token request returned %d: %s", resp.StatusCode, rbody)
		return "", fmt.Errorf("%w: oauth token returned %d", domain.ErrGateway, resp.StatusCode)
	}

	var reply struct {
		AccessToken string      `json:"access_token"`
		ExpiresIn   json.Number `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("%w: decode oauth token: %v", domain.ErrGateway, err)
	}
	if reply.AccessToken == "" {
		return "", fmt.Errorf("%w: %v", domain.ErrGateway, errors.New("oauth response carried no access token"))
	}

	secs, _ := reply.ExpiresIn.Int64()
	d.accessToken = reply.AccessToken
	d.expiresAt = d.now().Add(time.Duration(secs) * time.Second)
	return d.accessToken, nil
}

func (d *Daraja) resetToken() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.accessToken = ""
	d.expiresAt = time.Time{}
}

// Password is base64(shortcode + passkey + timestamp).
func Password(shortcode, passkey, timestamp string) string {
	return base64.StdEncoding.EncodeToString([]byte(shortcode + passkey + timestamp))
}

// NormalizePhone turns 07XXXXXXXX, 7XXXXXXXX, +2547XXXXXXXX and 2547XXXXXXXX
// into the 2547XXXXXXXX form the API expects.
func NormalizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", fmt.Errorf("%w: phone number required", domain.ErrInvalidAddress)
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	p := digits.String()

	switch {
	case len(p) == 10 && strings.HasPrefix(p, "0"):
		return "254" + p[1:], nil
	case len(p) == 9 && strings.HasPrefix(p, "7"):
		return "254" + p, nil
	case strings.HasPrefix(p, "254") && len(p) >= 12:
		return p, nil
	}
	return "", fmt.Errorf("%w: unsupported phone number format %q", domain.ErrInvalidAddress, phone)
}
