package api

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DE-labtory/billing"
	kitlog "github.com/go-kit/kit/log"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
)

type ErrIllegalArgument struct {
	Reason string
}

func (e ErrIllegalArgument) Error() string {
	return fmt.Sprintf("err illegal argument: %s", e.Reason)
}

func NewApiHandler(endpoints billing.Endpoints, logger kitlog.Logger) http.Handler {
	r := mux.NewRouter()

	opts := []kithttp.ServerOption{
		kithttp.ServerErrorLogger(logger),
		kithttp.ServerErrorEncoder(encodeError),
	}

	r.Methods("GET").Path("/healthz").HandlerFunc(func(w http.ResponseWriter, request *http.Request) {
		w.Write([]byte("up"))
	})

	r.Methods("GET").Path("/participants").Handler(kithttp.NewServer(
		endpoints.ListParticipants,
		decodeEmptyRequest(billing.ListParticipantsRequest{}),
		encodeParticipants,
		opts...,
	))

	r.Methods("POST").Path("/emission").Handler(kithttp.NewServer(
		endpoints.Emit,
		decodeEmitRequest,
		encodeReceipt,
		opts...,
	))

	r.Methods("POST").Path("/transfer").Handler(kithttp.NewServer(
		endpoints.Transfer,
		decodeTransferRequest,
		encodeReceipt,
		opts...,
	))

	r.Methods("GET").Path("/coins/longest").Handler(kithttp.NewServer(
		endpoints.LongestHistoryCoin,
		decodeEmptyRequest(billing.LongestHistoryCoinRequest{}),
		encodeCoin,
		opts...,
	))

	r.Methods("GET").Path("/coins/{id:[0-9]+}").Handler(kithttp.NewServer(
		endpoints.Coin,
		decodeCoinRequest,
		encodeCoin,
		opts...,
	))

	r.Methods("GET").Path("/coins/{id:[0-9]+}/proof").Handler(kithttp.NewServer(
		endpoints.Proof,
		decodeProofRequest,
		encodeProof,
		opts...,
	))

	r.Methods("GET").Path("/digest").Handler(kithttp.NewServer(
		endpoints.Digest,
		decodeEmptyRequest(billing.DigestRequest{}),
		encodeDigest,
		opts...,
	))

	return r
}

type EmitRequest struct {
	Amount int64 `json:"amount"`
}

type TransferRequest struct {
	Src    string `json:"src"`
	Dst    string `json:"dst"`
	Amount int64  `json:"amount"`
}

type ParticipantView struct {
	Name    string `json:"name"`
	Weight  int64  `json:"weight"`
	Balance int64  `json:"balance"`
}

type ReceiptView struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Receipt string `json:"receipt,omitempty"`
}

type CoinView struct {
	ID         int64    `json:"id"`
	Holder     string   `json:"holder"`
	Provenance []string `json:"provenance"`
}

type DigestView struct {
	Root  string `json:"root"`
	Coins int    `json:"coins"`
}

type ProofView struct {
	Coin  CoinView `json:"coin"`
	Root  string   `json:"root"`
	Path  []string `json:"path"`
	Index []int64  `json:"index"`
}

func decodeEmptyRequest(request interface{}) kithttp.DecodeRequestFunc {
	return func(context.Context, *http.Request) (interface{}, error) {
		return request, nil
	}
}

func decodeEmitRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body := EmitRequest{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, ErrIllegalArgument{err.Error()}
	}
	return billing.EmitRequest{Amount: body.Amount}, nil
}

func decodeTransferRequest(_ context.Context, r *http.Request) (interface{}, error) {
	body := TransferRequest{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, ErrIllegalArgument{err.Error()}
	}
	if body.Src == "" || body.Dst == "" {
		return nil, ErrIllegalArgument{"src and dst are required"}
	}
	return billing.TransferRequest{Src: body.Src, Dst: body.Dst, Amount: body.Amount}, nil
}

func decodeCoinRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := coinID(r)
	if err != nil {
		return nil, err
	}
	return billing.CoinRequest{ID: id}, nil
}

func decodeProofRequest(_ context.Context, r *http.Request) (interface{}, error) {
	id, err := coinID(r)
	if err != nil {
		return nil, err
	}
	return billing.ProofRequest{ID: id}, nil
}

func coinID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, ErrIllegalArgument{"coin id must be an integer"}
	}
	return id, nil
}

func encodeParticipants(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(billing.ListParticipantsResponse)

	views := make([]ParticipantView, 0, len(resp.Participants))
	for _, p := range resp.Participants {
		views = append(views, ParticipantView{Name: p.Name, Weight: p.Weight, Balance: p.Balance})
	}
	return encodeJSON(w, http.StatusOK, views)
}

// failed mutations keep the status/message shape of successful ones
func encodeReceipt(_ context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(billing.ReceiptResponse)
	if resp.Err != nil {
		return encodeJSON(w, statusCode(resp.Err), ReceiptView{Status: "failed", Message: resp.Err.Error()})
	}
	return encodeJSON(w, http.StatusOK, ReceiptView{
		Status:  "ok",
		Message: resp.Receipt.Message,
		Receipt: resp.Receipt.ID,
	})
}

func encodeCoin(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(billing.CoinResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}
	return encodeJSON(w, http.StatusOK, coinView(resp.Coin))
}

func encodeDigest(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(billing.DigestResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}
	return encodeJSON(w, http.StatusOK, DigestView{
		Root:  hex.EncodeToString(resp.Digest.Root),
		Coins: resp.Digest.Coins,
	})
}

func encodeProof(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	resp := response.(billing.ProofResponse)
	if resp.Err != nil {
		encodeError(ctx, resp.Err, w)
		return nil
	}

	path := make([]string, 0, len(resp.Proof.Path))
	for _, hash := range resp.Proof.Path {
		path = append(path, hex.EncodeToString(hash))
	}
	return encodeJSON(w, http.StatusOK, ProofView{
		Coin:  coinView(resp.Proof.Coin),
		Root:  hex.EncodeToString(resp.Proof.Root),
		Path:  path,
		Index: resp.Proof.Index,
	})
}

func coinView(c billing.Coin) CoinView {
	return CoinView{
		ID:         c.ID,
		Holder:     c.Holder(),
		Provenance: c.Provenance,
	}
}

func encodeJSON(w http.ResponseWriter, code int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

// encode errors from business-logic
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	encodeJSON(w, statusCode(err), map[string]interface{}{
		"error": err.Error(),
	})
}

func statusCode(err error) int {
	var illegal ErrIllegalArgument
	switch {
	case errors.As(err, &illegal),
		errors.Is(err, billing.ErrInsufficientAmount),
		errors.Is(err, billing.ErrInvalidAmount),
		errors.Is(err, billing.ErrSelfTransfer):
		return http.StatusBadRequest
	case errors.Is(err, billing.ErrUnknownParticipant),
		errors.Is(err, billing.ErrUnknownCoin),
		errors.Is(err, billing.ErrEmptyLedger):
		return http.StatusNotFound
	case errors.Is(err, billing.ErrInsufficientBalance),
		errors.Is(err, billing.ErrTransferConsistency):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
