package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/skyfleetdev/airmaint/internal/auth"
	"github.com/skyfleetdev/airmaint/internal/db"
	"github.com/skyfleetdev/airmaint/internal/handlers"
	"github.com/skyfleetdev/airmaint/internal/maintenance"
	"github.com/skyfleetdev/airmaint/internal/middleware"
	"github.com/skyfleetdev/airmaint/internal/notifier"
)

const defaultSchedulerInterval = 15 * time.Minute

func configureLogging() {
	log.SetFormatter(&log.JSONFormatter{})
	level, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func schedulerInterval() time.Duration {
	if v := os.Getenv("SCHEDULER_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return time.Duration(n) * time.Minute
		}
	}
	return defaultSchedulerInterval
}

// runSchedulerLoop runs the fleet pass on a fixed interval, raises work
// orders for anything DUE or OVERDUE, and publishes alerts when a broker is
// configured.
func runSchedulerLoop(ctx context.Context, service *maintenance.Service, publisher *notifier.AlertPublisher, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		result := service.Run(ctx)
		if orders, err := service.CreateWorkOrdersForDue(ctx, true); err != nil {
			log.WithError(err).Error("Work order generation failed")
		} else {
			result.WorkOrdersCreated = len(orders)
		}

		log.WithFields(log.Fields{
			"schedules_processed": result.SchedulesProcessed,
			"to_due":              result.ToDue,
			"to_overdue":          result.ToOverdue,
			"work_orders_created": result.WorkOrdersCreated,
			"alerts":              len(result.Alerts),
			"errors":              len(result.Errors),
		}).Info("Scheduler pass completed")

		if publisher != nil && len(result.Alerts) > 0 {
			publisher.PublishAlerts(result.Alerts)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using environment")
	}
	configureLogging()

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "airmaint"
	}
	database := client.Database(dbName)

	aircraftColl := &db.MongoAircraftCollection{Collection: database.Collection("aircraft")}
	componentColl := &db.MongoComponentCollection{Collection: database.Collection("components")}
	programColl := &db.MongoProgramCollection{Collection: database.Collection("maintenance_programs")}
	triggerColl := &db.MongoTriggerCollection{Collection: database.Collection("maintenance_triggers")}
	scheduleColl := &db.MongoScheduleCollection{Collection: database.Collection("maintenance_schedules")}
	workOrderColl := &db.MongoWorkOrderCollection{Collection: database.Collection("work_orders")}
	flightLogColl := &db.MongoFlightLogCollection{Collection: database.Collection("flight_logs")}
	userColl := &db.MongoUserCollection{Collection: database.Collection("users")}

	service := maintenance.NewService(
		aircraftColl,
		componentColl,
		programColl,
		triggerColl,
		scheduleColl,
		workOrderColl,
		maintenance.NewCalculator(),
	)

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}
	authMiddleware := middleware.NewAuthMiddleware(authService)

	authHandler := handlers.NewAuthHandler(authService, userColl)
	maintenanceHandler := handlers.NewMaintenanceHandler(service)
	aircraftHandler := handlers.NewAircraftHandler(aircraftColl)
	flightLogHandler := handlers.NewFlightLogHandler(flightLogColl, aircraftColl)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/api/auth/login", authHandler.Login)
	mux.Handle("/api/maintenance/run", authMiddleware.RequirePermission("run_scheduler")(http.HandlerFunc(maintenanceHandler.Run)))
	mux.Handle("/api/maintenance/workorders", authMiddleware.RequirePermission("manage_workorders")(http.HandlerFunc(maintenanceHandler.GenerateWorkOrders)))
	mux.HandleFunc("/api/maintenance/alerts", maintenanceHandler.Alerts)
	mux.HandleFunc("/api/maintenance/preview", maintenanceHandler.Preview)
	mux.Handle("/api/maintenance/schedules/initialize", authMiddleware.RequirePermission("manage_schedules")(http.HandlerFunc(maintenanceHandler.InitializeSchedules)))
	mux.Handle("/api/maintenance/schedules/complete", authMiddleware.RequirePermission("complete_schedule")(http.HandlerFunc(maintenanceHandler.CompleteSchedule)))
	mux.Handle("/api/aircraft", authMiddleware.RequirePermission("manage_aircraft")(http.HandlerFunc(aircraftHandler.Handle)))
	mux.Handle("/api/aircraft/", authMiddleware.RequirePermission("manage_aircraft")(http.HandlerFunc(aircraftHandler.HandleByID)))
	mux.HandleFunc("/api/flightlogs", flightLogHandler.Handle)

	var publisher *notifier.AlertPublisher
	if broker := os.Getenv("MQTT_BROKER"); broker != "" {
		publisher, err = notifier.Connect(broker, "airmaint-server")
		if err != nil {
			log.WithError(err).Warn("MQTT broker unavailable, alerts will not be published")
		} else {
			defer publisher.Close()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go runSchedulerLoop(ctx, service, publisher, schedulerInterval())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, authMiddleware.Authenticate(mux)))
}
