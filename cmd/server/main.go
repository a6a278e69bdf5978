package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	clobdb "github.com/orderbook-engine/clob/db"
	"github.com/orderbook-engine/clob/internal/book"
	"github.com/orderbook-engine/clob/internal/config"
	"github.com/orderbook-engine/clob/internal/engine"
	"github.com/orderbook-engine/clob/internal/logging"
)

type placeOrderRequest struct {
	ID       uint64 `json:"id"`
	Side     string `json:"side"` // "BUY" | "SELL"
	Price    int64  `json:"price"`
	Quantity uint64 `json:"quantity"`
	IsMarket bool   `json:"is_market"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	logger := logging.New(cfg)
	ctx := context.Background()

	pool, err := clobdb.NewPool(ctx, cfg)
	if err != nil {
		logger.Error("connecting to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	persister := clobdb.NewTradePersister(pool, logger)

	eng := engine.New(engine.WithTradeListener(persister))
	runner := engine.NewRunner(eng, cfg.Server.CommandBuffer, logger)
	go runner.Run(ctx)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(3 * time.Second))

	writeProblem := func(w http.ResponseWriter, r *http.Request, code int, title, detail string) {
		reqID := middleware.GetReqID(r.Context())
		w.Header().Set("Content-Type", "application/problem+json")
		w.Header().Set("X-Request-ID", reqID)
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"title":      title,
			"status":     code,
			"detail":     detail,
			"instance":   r.URL.Path,
			"request_id": reqID,
		})
	}

	r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
		var req placeOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeProblem(w, r, http.StatusBadRequest, "invalid_json", err.Error())
			return
		}

		side, err := parseSide(req.Side)
		if err != nil {
			writeProblem(w, r, http.StatusBadRequest, "validation_error", err.Error())
			return
		}

		resp := make(chan engine.Result, 1)
		if req.IsMarket {
			runner.Submit(engine.Command{
				Type:   engine.CmdPlaceMarket,
				Market: engine.PlaceMarketCommand{ID: req.ID, Side: side, Qty: req.Quantity},
				Resp:   resp,
			})
		} else {
			runner.Submit(engine.Command{
				Type:  engine.CmdPlaceLimit,
				Limit: engine.PlaceLimitCommand{ID: req.ID, Side: side, Price: req.Price, Qty: req.Quantity},
				Resp:  resp,
			})
		}

		res := <-resp
		if res.Err != nil {
			writeOrderError(writeProblem, w, r, res.Err)
			return
		}

		rid := middleware.GetReqID(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Request-ID", rid)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"order_id":   req.ID,
			"resting":    res.Rested,
			"filled":     res.Filled,
			"request_id": rid,
		})
	})

	r.Delete("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeProblem(w, r, http.StatusBadRequest, "validation_error", "id must be a non-negative integer")
			return
		}

		resp := make(chan engine.Result, 1)
		runner.Submit(engine.Command{Type: engine.CmdCancel, CancelID: id, Resp: resp})
		res := <-resp

		if !res.Existed {
			writeProblem(w, r, http.StatusNotFound, "not_found", "order not found")
			return
		}
		w.Header().Set("X-Request-ID", middleware.GetReqID(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/book", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"bids": eng.BidLevels(10),
			"asks": eng.AskLevels(10),
		})
	})

	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(eng.MetricsSummary()))
	})

	logger.Info("listening", "addr", cfg.Server.ListenAddr)
	if err := http.ListenAndServe(cfg.Server.ListenAddr, r); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func parseSide(s string) (book.Side, error) {
	switch s {
	case "BUY", "buy":
		return book.Buy, nil
	case "SELL", "sell":
		return book.Sell, nil
	default:
		return 0, errors.New("side must be BUY or SELL")
	}
}

func writeOrderError(writeProblem func(http.ResponseWriter, *http.Request, int, string, string), w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, book.ErrDuplicateOrderID):
		writeProblem(w, r, http.StatusConflict, "duplicate_order_id", err.Error())
	case errors.Is(err, book.ErrInvalidPrice), errors.Is(err, book.ErrInvalidQuantity):
		writeProblem(w, r, http.StatusBadRequest, "validation_error", err.Error())
	default:
		writeProblem(w, r, http.StatusInternalServerError, "engine_error", err.Error())
	}
}
