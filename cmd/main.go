/**
 * @description
 * This is the main entry point for the Ziganya client. It is responsible for
 * initializing all components: configuration, the API client, the preference
 * store, the translation bundle, the per-entity lifecycle controllers, the
 * dashboard with its real-time report consumer and its periodic refresh, and
 * graceful shutdown.
 *
 * @dependencies
 * - github.com/joho/godotenv: To load .env files for local development.
 * - github.com/robfig/cron/v3: Periodic full dashboard refresh.
 * - internal/app, internal/config, internal/feedback, internal/i18n: Internal packages.
 * - pkg/apiclient, pkg/prefstore, pkg/reportstream, pkg/docshare: Client-side collaborators.
 */

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/CodeLearner2024/ziganya-client/internal/app"
	"github.com/CodeLearner2024/ziganya-client/internal/config"
	"github.com/CodeLearner2024/ziganya-client/internal/feedback"
	"github.com/CodeLearner2024/ziganya-client/internal/i18n"
	"github.com/CodeLearner2024/ziganya-client/pkg/apiclient"
	"github.com/CodeLearner2024/ziganya-client/pkg/docshare"
	"github.com/CodeLearner2024/ziganya-client/pkg/prefstore"
	"github.com/CodeLearner2024/ziganya-client/pkg/reportstream"
)

const languagePrefKey = "display_language"

func main() {
	// Load .env file for local development. In production, env vars are set directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("level=fatal component=bootstrap msg=\"config load failed\" err=%v", err)
	}
	if cfg.APIBaseURL == "" {
		log.Fatalf("level=fatal component=bootstrap msg=\"api base url must be configured\" env=API_BASE_URL")
	}
	log.Printf("level=info component=bootstrap msg=\"starting ziganya client\" api=%s", cfg.APIBaseURL)

	ctx := context.Background()

	// Preference store: Redis when configured, in-process otherwise.
	var prefs prefstore.Store
	if cfg.RedisURL != "" {
		redisStore, redisErr := prefstore.NewRedisStore(ctx, cfg.RedisURL, cfg.PrefsKeyPrefix)
		if redisErr != nil {
			log.Printf("level=warn component=bootstrap msg=\"redis unavailable; preferences held in memory\" err=%v", redisErr)
			prefs = prefstore.NewMemoryStore()
		} else {
			defer redisStore.Close()
			prefs = redisStore
			log.Println("level=info component=bootstrap msg=\"preference store connected\"")
		}
	} else {
		prefs = prefstore.NewMemoryStore()
	}

	// Resolve the display language: stored preference first, configured
	// default otherwise.
	language := i18n.Language(cfg.DefaultLanguage)
	if stored, prefErr := prefs.Get(ctx, languagePrefKey); prefErr == nil && stored != "" {
		language = i18n.Language(stored)
	}
	bundle := i18n.NewBundle(language)
	log.Printf("level=info component=bootstrap msg=\"display language resolved\" language=%s", bundle.Language())

	client := apiclient.NewClient(cfg.APIBaseURL, cfg.APIToken, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
	fb := feedback.NewChannel(
		time.Duration(cfg.FeedbackHideMillis)*time.Millisecond,
		time.Duration(cfg.FeedbackDetailHideMillis)*time.Millisecond,
	)
	tr := bundle.Translator()

	// One independent controller per screen; no cross-screen shared state.
	members := app.NewMembersController(client, fb, tr)
	contributions := app.NewContributionsController(client, fb, tr)
	credits := app.NewCreditsController(client, fb, tr)
	refunds := app.NewRefundsController(client, fb, tr)
	settings := app.NewSettingsController(client, fb, tr)
	details := app.NewDetailsController(client, fb, tr)
	defer members.Close()
	defer contributions.Close()
	defer credits.Close()
	defer refunds.Close()
	defer settings.Close()
	defer details.Close()

	dashboard := app.NewDashboard(client)
	if err := dashboard.Refresh(ctx); err != nil {
		log.Printf("level=warn component=bootstrap msg=\"initial report fetch failed\" err=%v", err)
	}

	// Real-time report channel. Unavailability is non-fatal: the dashboard
	// keeps serving the last snapshot and the cron refresh re-synchronizes.
	if cfg.RabbitMQURL != "" {
		consumer, consumerErr := reportstream.NewConsumer(cfg.RabbitMQURL, dashboard.SetConnected)
		if consumerErr != nil {
			log.Printf("level=warn component=bootstrap msg=\"report stream unavailable\" err=%v", consumerErr)
		} else {
			defer consumer.Close()
			bindings := map[string]func([]byte) bool{
				"report.updated": dashboard.HandleMessage,
			}
			if bindErr := consumer.ConsumeWithBindings(cfg.ReportExchange, cfg.ReportQueue, bindings); bindErr != nil {
				log.Printf("level=warn component=bootstrap msg=\"report stream bind failed\" err=%v", bindErr)
			} else {
				log.Println("level=info component=bootstrap msg=\"report stream connected\"")
			}
		}
	}

	// When an export directory is configured, every refresh also rewrites the
	// shareable report document.
	var renderer docshare.Renderer
	if cfg.ExportDir != "" {
		renderer = docshare.NewFileRenderer(cfg.ExportDir)
	}

	scheduler := cron.New()
	if _, cronErr := scheduler.AddFunc(cfg.ReportRefreshSpec, func() {
		refreshCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
		defer cancel()
		if refreshErr := dashboard.Refresh(refreshCtx); refreshErr != nil {
			return
		}
		if renderer == nil {
			return
		}
		if path, renderErr := renderer.RenderHTML(refreshCtx, dashboard.RenderHTML()); renderErr != nil {
			log.Printf("level=warn component=bootstrap msg=\"report document render failed\" err=%v", renderErr)
		} else {
			log.Printf("level=info component=bootstrap msg=\"report document refreshed\" path=%s", path)
		}
	}); cronErr != nil {
		log.Printf("level=warn component=bootstrap msg=\"invalid report refresh spec; periodic refresh disabled\" spec=%q err=%v", cfg.ReportRefreshSpec, cronErr)
	} else {
		scheduler.Start()
		defer scheduler.Stop()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Println("level=info component=bootstrap msg=\"shutdown started\"")
	log.Println("level=info component=bootstrap msg=\"shutdown complete\"")
}
