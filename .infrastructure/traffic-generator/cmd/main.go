package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы к parcel-service по маршруту и коду ответа",
	}, []string{"route", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса к parcel-service",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"route"})
)

type bookParcelRequest struct {
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ReceiverName  string    `json:"receiverName"`
	Address       string    `json:"address"`
	Weight        float64   `json:"weight"`
	RequestedDate time.Time `json:"requestedDate"`
}

func main() {
	target := getenv("TARGET_URL", "http://localhost:8080")
	pause, err := time.ParseDuration(getenv("PAUSE", "1s"))
	if err != nil {
		log.Fatalf("PAUSE: %v", err)
	}

	client := &http.Client{Timeout: 5 * time.Second}

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(":2112", nil); err != nil {
			log.Fatalf("metrics server: %v", err)
		}
	}()

	for i := 0; ; i++ {
		bookParcel(client, target, i)
		do(client, http.MethodGet, target+"/top-delivery-men", "/top-delivery-men", nil)
		do(client, http.MethodGet, target+"/stats", "/stats", nil)
		time.Sleep(pause)
	}
}

func bookParcel(client *http.Client, target string, i int) {
	body, err := json.Marshal(bookParcelRequest{
		Name:          "Load " + strconv.Itoa(i),
		Email:         fmt.Sprintf("load%d@parcel.io", i%50),
		ReceiverName:  "Receiver",
		Address:       "Test street " + strconv.Itoa(rand.Intn(100)),
		Weight:        float64(1 + rand.Intn(20)),
		RequestedDate: time.Now().UTC().AddDate(0, 0, rand.Intn(7)),
	})
	if err != nil {
		log.Printf("marshal: %v", err)
		return
	}
	do(client, http.MethodPost, target+"/book-parcel", "/book-parcel", body)
}

func do(client *http.Client, method string, url string, route string, body []byte) {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(route, "error").Inc()
		return
	}
	_ = resp.Body.Close()

	requestsTotal.WithLabelValues(route, strconv.Itoa(resp.StatusCode)).Inc()
}

func getenv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
