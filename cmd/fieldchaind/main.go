// Command fieldchaind runs a small demo server exposing a signup endpoint
// validated by fieldchain. It exists to exercise the full stack: env-driven
// configuration, structured logging, an async custom check, and the request
// body middleware on a chi router.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/fieldchain"
	"github.com/dmitrymomot/fieldchain/pkg/config"
	"github.com/dmitrymomot/fieldchain/pkg/httpserver"
	"github.com/dmitrymomot/fieldchain/pkg/logger"
	"github.com/dmitrymomot/fieldchain/validator"
)

type appConfig struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// takenEmails stands in for the user store an async uniqueness check would
// consult in a real deployment.
var takenEmails = map[string]bool{
	"admin@example.com": true,
	"root@example.com":  true,
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	var log *slog.Logger
	if cfg.Environment == "production" {
		log = logger.New(logger.WithProduction("fieldchaind"))
	} else {
		log = logger.New(logger.WithDevelopment("fieldchaind"))
	}
	logger.SetAsDefault(log)

	registry := validator.NewRegistry(validator.WithRegistryLogger(log))
	registry.Register("uniqueEmail", func(map[string]any) validator.CheckFunc {
		return func(ctx *validator.Context, value any, _ string, next validator.Next) validator.Result {
			email, ok := value.(string)
			if !ok {
				return next()
			}
			return validator.Defer(ctx, func(context.Context) (any, error) {
				// Simulated store lookup latency
				time.Sleep(10 * time.Millisecond)
				if takenEmails[strings.ToLower(email)] {
					return "email is already registered", nil
				}
				return next(), nil
			})
		}
	})

	schema := validator.Schema{
		"name": validator.NewChain().Required().
			IsString(validator.StringOpts{Trim: true}),
		"email": validator.NewChain(validator.WithRegistry(registry), validator.WithTimeout(5*time.Second)).
			Required().
			IsString(validator.StringOpts{Trim: true, Case: validator.CaseLower}).
			Email().
			Custom("uniqueEmail", nil),
		"password": validator.NewChain().Required().
			Password(validator.PasswordOpts{}),
		"repeatPassword": validator.NewChain().
			SameAs(validator.SameAsOpts{Path: "$/password"}),
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.With(fieldchain.RequestBodyValidator(schema,
		fieldchain.WithLogger(log),
		fieldchain.WithValidatorOptions(validator.WithTrimUnknown()),
	)).Post("/signup", func(w http.ResponseWriter, r *http.Request) {
		body := fieldchain.ValidatedBody(r.Context())
		log.InfoContext(r.Context(), "signup accepted", slog.Any("email", body["email"]))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"email": body["email"],
			"name":  body["name"],
		})
	})

	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithLogger(log),
		httpserver.WithShutdownTimeout(10*time.Second),
	)
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
