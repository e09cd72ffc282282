// Package transport exposes the wallet over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service"
	"github.com/SatoKentaNayoro/aleo-wallet-test/internal/aleo/service/transfer"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Wallet interface {
		Scan(ctx context.Context, req service.ScanRequest) service.ScanResult
		Transfer(ctx context.Context, req transfer.Request) string
	}
)

type scanRequest struct {
	SpendKey *string `json:"spend_key"`
	ViewKey  string  `json:"view_key"`
	Start    *uint32 `json:"start"`
	End      *uint32 `json:"end"`
	Last     *uint32 `json:"last"`
	Endpoint string  `json:"endpoint"`
}

type transferRequest struct {
	PrivateKey        string `json:"private_key"`
	Record            string `json:"record"`
	Amount            uint64 `json:"amount"`
	Recipient         string `json:"recipient"`
	QueryEndpoint     string `json:"query_endpoint"`
	BroadcastEndpoint string `json:"broadcast_endpoint"`
	Display           bool   `json:"display"`
}

type transferResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// WalletHandler serves scan and transfer requests.
type WalletHandler struct {
	wallet Wallet
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewWalletHandler returns a WalletHandler instance.
func NewWalletHandler(wallet Wallet, logger *zap.Logger) *WalletHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &WalletHandler{
		wallet: wallet,
		logger: logger,
		mux:    http.NewServeMux(),
	}
	h.mux.HandleFunc("POST /api/v1/scan", h.scan)
	h.mux.HandleFunc("POST /api/v1/transfer", h.transfer)
	h.mux.HandleFunc("GET /healthz", h.health)
	return h
}

func (h *WalletHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	h.mux.ServeHTTP(w, r)
	h.logger.Debug("request served",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("elapsed", time.Since(started)),
	)
}

func (h *WalletHandler) scan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := decode(w, r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := h.wallet.Scan(r.Context(), service.ScanRequest{
		SpendKey: req.SpendKey,
		ViewKey:  req.ViewKey,
		Start:    req.Start,
		End:      req.End,
		Last:     req.Last,
		Endpoint: req.Endpoint,
	})
	h.writeJSON(w, http.StatusOK, res)
}

func (h *WalletHandler) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decode(w, r, &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := h.wallet.Transfer(r.Context(), transfer.Request{
		PrivateKey:        req.PrivateKey,
		Record:            req.Record,
		Amount:            req.Amount,
		Recipient:         req.Recipient,
		QueryEndpoint:     req.QueryEndpoint,
		BroadcastEndpoint: req.BroadcastEndpoint,
		Display:           req.Display,
	})
	h.writeJSON(w, http.StatusOK, transferResponse{Result: res})
}

func (h *WalletHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *WalletHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}
