package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы генератора к API заявок",
	}, []string{"operation", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запросов генератора в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1, 2},
	}, []string{"operation"})
)

var equipment = []string{"Impressora", "Monitor", "Teclado", "Notebook", "Projetor"}

type order struct {
	ID string `json:"id"`
}

type generator struct {
	client  *http.Client
	baseURL string
	open    []string
}

func (g *generator) post(operation, path string, body any) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := g.client.Post(g.baseURL+path, "application/json", bytes.NewReader(payload))
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(operation, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(operation, fmt.Sprint(resp.StatusCode)).Inc()
	return resp, nil
}

// createOrder открывает заявку: экраны "open" получают новый снимок.
func (g *generator) createOrder() {
	resp, err := g.post("create", "/orders", map[string]string{
		"patrimony":   fmt.Sprintf("PAT-%05d", rand.Intn(100000)),
		"description": equipment[rand.Intn(len(equipment))],
	})
	if err != nil {
		log.Printf("create order: %v", err)
		return
	}
	defer resp.Body.Close()

	var created order
	if resp.StatusCode == http.StatusCreated && json.NewDecoder(resp.Body).Decode(&created) == nil {
		g.open = append(g.open, created.ID)
	}
}

// closeOrder закрывает случайную открытую заявку: меняются оба экрана.
func (g *generator) closeOrder() {
	if len(g.open) == 0 {
		return
	}
	i := rand.Intn(len(g.open))
	id := g.open[i]
	g.open = append(g.open[:i], g.open[i+1:]...)

	resp, err := g.post("close", "/orders/"+id+"/close", map[string]string{
		"solution": "Equipamento substituído",
	})
	if err != nil {
		log.Printf("close order %s: %v", id, err)
		return
	}
	resp.Body.Close()
}

func main() {
	baseURL := flag.String("api", "http://localhost:8080", "order tracker API")
	interval := flag.Duration("interval", 2*time.Second, "pause between operations")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	g := &generator{
		client:  &http.Client{Timeout: 5 * time.Second},
		baseURL: *baseURL,
	}

	for {
		if rand.Intn(3) == 0 {
			g.closeOrder()
		} else {
			g.createOrder()
		}
		time.Sleep(*interval)
	}
}
