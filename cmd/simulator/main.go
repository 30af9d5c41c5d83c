package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

type locationMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SpeedKmh  float64 `json:"speed_kmh"`
	Timestamp int64   `json:"timestamp"`
}

// the two campus stations the default config fences
var stations = []struct{ lat, lon float64 }{
	{12.9710, 77.5946},
	{12.9720, 77.5956},
}

func randomDeviceID() string {
	return fmt.Sprintf("buggy-%03d", rand.Intn(1000))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <interval_seconds>\n", os.Args[0])
		os.Exit(1)
	}

	intervalSec, err := strconv.Atoi(os.Args[1])
	if err != nil || intervalSec <= 0 {
		fmt.Fprintf(os.Stderr, "error: interval must be a positive integer\n")
		os.Exit(1)
	}

	broker := "tcp://localhost:1883"
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		broker = v
	}

	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID("ebuggy-simulator")

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("mqtt connect: %v", token.Error())
	}
	defer client.Disconnect(250)

	devicePool := make([]string, 3)
	for i := range devicePool {
		devicePool[i] = randomDeviceID()
	}

	log.Printf("connected to %s, publishing every %ds...", broker, intervalSec)
	log.Printf("device pool: %v", devicePool)

	ticker := time.NewTicker(time.Duration(intervalSec) * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		did := devicePool[rand.Intn(len(devicePool))]
		st := stations[rand.Intn(len(stations))]

		// ~30m jitter around the station so samples land inside the fence
		lat := st.lat + (rand.Float64()-0.5)*0.0003
		lon := st.lon + (rand.Float64()-0.5)*0.0003

		msg := locationMessage{
			DeviceID:  did,
			Latitude:  lat,
			Longitude: lon,
			SpeedKmh:  rand.Float64() * 15,
			Timestamp: time.Now().Unix(),
		}

		payload, _ := json.Marshal(msg)
		topic := fmt.Sprintf("/ebuggy/device/%s/location", did)

		token := client.Publish(topic, 1, false, payload)
		token.Wait()

		log.Printf("published to %s: %s", topic, payload)
	}
}
