package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
)

// orderEvent mirrors the fields the stream emits that are worth printing.
type orderEvent struct {
	ID            string  `json:"id"`
	OrderNumber   string  `json:"order_number"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	TotalAmount   float64 `json:"total_amount"`
}

func main() {
	addr := flag.String("addr", "localhost:10000", "API host:port")
	apiKey := flag.String("api-key", "", "tenant API key (required)")
	raw := flag.Bool("raw", false, "print raw frames instead of decoded events")
	flag.Parse()

	if *apiKey == "" {
		flag.Usage()
		os.Exit(1)
	}

	url := fmt.Sprintf("ws://%s/api/v1/orders/stream", *addr)
	header := http.Header{}
	header.Set("X-API-Key", *apiKey)

	fmt.Printf("Connecting to %s...\n", url)
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		log.Fatal("Failed to connect:", err)
	}
	defer conn.Close()

	conn.SetPingHandler(func(appData string) error {
		return conn.WriteMessage(websocket.PongMessage, nil)
	})

	fmt.Println("Connected! Waiting for order events...")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if *raw {
				fmt.Println(string(message))
				continue
			}
			var ev orderEvent
			if err := json.Unmarshal(message, &ev); err != nil {
				fmt.Println(string(message))
				continue
			}
			fmt.Printf("order %s (%s) status=%s payment=%s total=%.2f\n",
				ev.OrderNumber, ev.ID, ev.Status, ev.PaymentStatus, ev.TotalAmount)
		}
	}()

	select {
	case <-done:
		return
	case <-interrupt:
		fmt.Println("\nDisconnecting...")

		err := conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		if err != nil {
			log.Println("Write close:", err)
			return
		}

		select {
		case <-done:
		case <-time.After(time.Second):
		}
	}
}
