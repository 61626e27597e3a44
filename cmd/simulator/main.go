package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Aircraft mirrors the API payload for fleet onboarding.
type Aircraft struct {
	RegistrationNumber string  `json:"registration_number"`
	Model              string  `json:"model"`
	SerialNumber       string  `json:"serial_number"`
	TotalFlightHours   float64 `json:"total_flight_hours"`
	TotalFlightCycles  int     `json:"total_flight_cycles"`
	Status             string  `json:"status"`
}

// FlightLog mirrors the API payload for one completed flight.
type FlightLog struct {
	AircraftID  string    `json:"aircraft_id"`
	Departure   string    `json:"departure"`
	Arrival     string    `json:"arrival"`
	DepartedAt  time.Time `json:"departed_at"`
	ArrivedAt   time.Time `json:"arrived_at"`
	HoursFlown  float64   `json:"hours_flown"`
	CyclesAdded int       `json:"cycles_added"`
	Pilot       string    `json:"pilot,omitempty"`
}

var fleetModels = []string{"SF-220", "SF-220", "SF-340", "SF-900"}

var airports = []string{
	"LHR", "JFK", "MAD", "LCA", "BOG", "CDG", "IST", "CWL",
	"LAX", "SFO", "BER", "HND", "SYD", "SIN", "GRU", "YYZ",
}

var authToken string

func authorizedPost(url string, body *bytes.Buffer) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func randomRegistration(i int) string {
	return fmt.Sprintf("N%03dSF", 100+i)
}

func createAircraft(apiURL string, i int) (string, error) {
	aircraft := Aircraft{
		RegistrationNumber: randomRegistration(i),
		Model:              fleetModels[rand.Intn(len(fleetModels))],
		SerialNumber:       fmt.Sprintf("SN-%06d", rand.Intn(1000000)),
		TotalFlightHours:   float64(rand.Intn(2000)),
		TotalFlightCycles:  rand.Intn(3000),
		Status:             "active",
	}

	data, err := json.Marshal(aircraft)
	if err != nil {
		return "", fmt.Errorf("failed to marshal aircraft: %w", err)
	}

	resp, err := authorizedPost(apiURL+"/aircraft", bytes.NewBuffer(data))
	if err != nil {
		return "", fmt.Errorf("failed to create aircraft: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("aircraft creation failed with status: %d", resp.StatusCode)
	}

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	aircraftID, ok := result["id"].(string)
	if !ok {
		return "", fmt.Errorf("invalid aircraft ID in response")
	}

	log.WithFields(log.Fields{
		"aircraft_id":  aircraftID,
		"registration": aircraft.RegistrationNumber,
		"model":        aircraft.Model,
	}).Info("Created aircraft")

	return aircraftID, nil
}

func initializeSchedules(apiURL, aircraftID string) {
	resp, err := authorizedPost(apiURL+"/maintenance/schedules/initialize?aircraft_id="+aircraftID, bytes.NewBuffer(nil))
	if err != nil {
		log.WithError(err).WithField("aircraft_id", aircraftID).Error("Failed to initialize schedules")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{"aircraft_id": aircraftID, "status": resp.Status}).Info("Initialized schedules")
}

func randomFlight(aircraftID string) FlightLog {
	departure := airports[rand.Intn(len(airports))]
	arrival := departure
	for arrival == departure {
		arrival = airports[rand.Intn(len(airports))]
	}
	hours := 0.5 + rand.Float64()*11.5
	arrivedAt := time.Now()
	return FlightLog{
		AircraftID:  aircraftID,
		Departure:   departure,
		Arrival:     arrival,
		DepartedAt:  arrivedAt.Add(-time.Duration(hours * float64(time.Hour))),
		ArrivedAt:   arrivedAt,
		HoursFlown:  hours,
		CyclesAdded: 1,
	}
}

func sendFlightLog(apiURL string, flight FlightLog) {
	data, err := json.Marshal(flight)
	if err != nil {
		log.WithError(err).Error("Failed to marshal flight log")
		return
	}
	resp, err := authorizedPost(apiURL+"/flightlogs", bytes.NewBuffer(data))
	if err != nil {
		log.WithError(err).Error("Failed to send flight log")
		return
	}
	defer resp.Body.Close()
	log.WithFields(log.Fields{
		"aircraft_id": flight.AircraftID,
		"route":       flight.Departure + "-" + flight.Arrival,
		"hours":       flight.HoursFlown,
		"status":      resp.Status,
	}).Info("Sent flight log")
}

func simulateAircraft(apiURL, aircraftID string, interval time.Duration) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for range tick.C {
		sendFlightLog(apiURL, randomFlight(aircraftID))
	}
}

func main() {
	authToken = os.Getenv("SIM_AUTH_TOKEN")

	fleetSize := 5
	if val := os.Getenv("FLEET_SIZE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			fleetSize = n
		}
	}

	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	interval := 5 * time.Second
	if v := os.Getenv("SIM_TICK_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			interval = time.Duration(n) * time.Second
		}
	}

	log.WithFields(log.Fields{
		"fleet_size": fleetSize,
		"api_url":    apiURL,
		"interval":   interval,
	}).Info("Starting fleet simulation")

	aircraftIDs := make([]string, 0, fleetSize)
	for i := 0; i < fleetSize; i++ {
		aircraftID, err := createAircraft(apiURL, i+1)
		if err != nil {
			log.WithError(err).Error("Failed to create aircraft")
			continue
		}
		initializeSchedules(apiURL, aircraftID)
		aircraftIDs = append(aircraftIDs, aircraftID)
	}

	log.WithField("created_aircraft", len(aircraftIDs)).Info("Fleet creation completed")
	if len(aircraftIDs) == 0 {
		log.Error("No aircraft created. Ensure SIM_AUTH_TOKEN is valid and API is reachable. Exiting.")
		time.Sleep(2 * time.Second)
		return
	}

	for _, id := range aircraftIDs {
		go simulateAircraft(apiURL, id, interval)
	}

	log.Info("Flight log simulation started")
	select {} // Block forever
}
