package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	aparGrpc "liyu1981.xyz/apar-inspection-service/pkg/grpc"
	"liyu1981.xyz/apar-inspection-service/pkg/models"
)

// The server must run with a rate limit high enough for the load, e.g.
// APAR_DEFAULT_RATE=10000 APAR_DEFAULT_BURST=10000.

var maxApars int = 1000
var httpHostPort string = "127.0.0.1:1080"
var grpcHostPort string = "127.0.0.1:50051"

var adminEmail = envOr("APAR_ADMIN_EMAIL", "admin@example.com")
var adminPassword = os.Getenv("APAR_ADMIN_PASSWORD")

var token string
var grpcClient aparGrpc.DashboardServiceClient

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
var rndMu sync.Mutex

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}
	fmt.Printf("http server verified\n")

	login()
	fmt.Printf("logged in as %s\n", adminEmail)

	conn, err := grpc.NewClient(grpcHostPort, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatal("Failed to connect to gRPC server:", err)
	}
	defer conn.Close()
	grpcClient = aparGrpc.NewDashboardServiceClient(conn)
	fmt.Printf("gRPC client connected\n")

	aparIDs := make([]uint, maxApars)

	startTime := time.Now()
	wg := sync.WaitGroup{}
	for i := range maxApars {
		wg.Add(1)
		go func() {
			defer wg.Done()
			aparIDs[i] = createApar()
			fmt.Printf("\rcreated apar %v", i)
		}()
	}
	wg.Wait()
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\rcreated %v apars: used time=%v seconds, throughput=%v action/second\n",
		maxApars, usedTime.Seconds(), float64(maxApars)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxApars {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doAction(aparIDs[i])
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v apars: used time=%v seconds, throughput=%v action/second\n",
		maxApars, usedTime.Seconds(), float64(maxApars*3)/usedTime.Seconds(),
	)
}

func randInt(n int) int {
	rndMu.Lock()
	defer rndMu.Unlock()
	return rnd.Intn(n)
}

func flipCoin() bool {
	return randInt(2) == 0
}

func postJSON(path string, payload any, out any) {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s%s", httpHostPort, path), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		panic(fmt.Sprintf("POST %s: %d %s", path, resp.StatusCode, raw))
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			panic(err)
		}
	}
}

func login() {
	if adminPassword == "" {
		log.Fatal("set APAR_ADMIN_PASSWORD to the admin password")
	}
	var out struct {
		Token string `json:"token"`
	}
	postJSON("/auth/login", map[string]string{"email": adminEmail, "password": adminPassword}, &out)
	token = out.Token
}

func createApar() uint {
	types := models.AllAparTypes()
	payload := map[string]any{
		"number":      "BENCH-" + uuid.NewString()[:8],
		"location":    fmt.Sprintf("Gedung %c", 'A'+rune(randInt(5))),
		"type":        types[randInt(len(types))],
		"capacity":    "6 kg",
		"fill_date":   "2024-01-01",
		"expiry_date": time.Now().AddDate(0, randInt(24), 0).Format(time.DateOnly),
	}

	var out struct {
		ID uint `json:"id"`
	}
	postJSON("/apars", payload, &out)
	return out.ID
}

func randomChecklist() []map[string]any {
	statuses := models.AllItemStatuses()
	items := []map[string]any{}
	for _, itemType := range models.AllItemTypes() {
		status := models.ItemStatusGood
		if randInt(10) == 0 {
			status = statuses[randInt(len(statuses))]
		}
		items = append(items, map[string]any{"item_type": itemType, "status": status})
	}
	return items
}

func authed() context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func doAction(aparID uint) {
	actions := []func(){
		func() {
			postJSON("/inspections", map[string]any{
				"apar_id":         aparID,
				"inspection_date": time.Now().Format(time.DateOnly),
				"items":           randomChecklist(),
			}, nil)
		},
		func() {
			if flipCoin() {
				req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("http://%s/dashboard", httpHostPort), nil)
				req.Header.Set("Authorization", "Bearer "+token)
				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					fmt.Printf("\nerror: %v\n", err)
					return
				}
				defer resp.Body.Close()
				if resp.StatusCode != http.StatusOK {
					fmt.Printf("\nresponse status code != 200: %v\n", resp.StatusCode)
				}
			} else if _, err := grpcClient.GetUserDashboard(authed(), &emptypb.Empty{}); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		},
		func() {
			statuses := []any{}
			for _, item := range randomChecklist() {
				statuses = append(statuses, string(item["status"].(models.ItemStatus)))
			}
			in, _ := structpb.NewList(statuses)
			if _, err := grpcClient.DeriveOverallStatus(authed(), in); err != nil {
				fmt.Printf("\nerror: %v\n", err)
			}
		},
	}

	rndMu.Lock()
	order := rnd.Perm(len(actions))
	rndMu.Unlock()

	for _, i := range order {
		actions[i]()
		fmt.Printf("\rexecuted action %v for apar %v", i, aparID)
		time.Sleep(time.Duration(100+randInt(1000)) * time.Millisecond)
	}
}
