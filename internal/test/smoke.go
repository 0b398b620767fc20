// Command-line smoke and load test that drives register / login / post CRUD
// against a running instance and produces CSV + HTML reports.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"sync"
	"time"
)

var baseURL = "http://127.0.0.1:8080"

var client = &http.Client{Timeout: 10 * time.Second}

// postResult captures one create-post attempt for the report.
type postResult struct {
	Worker     int
	PostID     uint64
	StatusCode int
	ErrMessage string
	Elapsed    time.Duration
	Timestamp  time.Time
}

// ======================= HTTP helpers =======================

func doPostJSON(url string, body any, token string) (int, []byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, nil
}

func createPost(token, title, description string) (uint64, int, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("title", title)
	_ = mw.WriteField("description", description)
	_ = mw.Close()

	req, _ := http.NewRequest(http.MethodPost, baseURL+"/api/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()
	var created struct {
		ID uint64 `json:"id"`
	}
	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusCreated {
		_ = json.Unmarshal(data, &created)
	}
	return created.ID, resp.StatusCode, nil
}

func deletePost(token string, id uint64) (int, error) {
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/posts/%d", baseURL, id), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

// ======================= account helpers =======================

func registerAccount(name, email, phone, password string) error {
	status, data, err := doPostJSON(baseURL+"/api/auth/register", map[string]string{
		"name": name, "email": email, "phoneNumber": phone,
		"password": password, "role": "loadtest",
	}, "")
	if err != nil {
		return err
	}
	// 400 表示已存在（可接受）
	if status != http.StatusCreated && status != http.StatusBadRequest {
		return fmt.Errorf("register status %d body=%s", status, string(data))
	}
	return nil
}

func login(email, password string) (string, error) {
	status, data, err := doPostJSON(baseURL+"/api/auth/login", map[string]string{
		"email": email, "password": password,
	}, "")
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login status %d body=%s", status, string(data))
	}
	var res map[string]string
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}
	return res["access"], nil
}

// ======================= smoke tests =======================

// endpointSmokeTests exercises the auth and post endpoints with positive and
// negative cases before any load is applied.
func endpointSmokeTests() error {
	nonce := time.Now().UnixNano()
	email := fmt.Sprintf("smoke_%d@example.com", nonce%1000000)
	phone := fmt.Sprintf("1555%07d", nonce%10000000)
	password := "SmokePwd123!"

	if err := registerAccount("Smoke Tester", email, phone, password); err != nil {
		return fmt.Errorf("register failed: %w", err)
	}

	// Duplicate registration should be rejected (400).
	if status, _, err := doPostJSON(baseURL+"/api/auth/register", map[string]string{
		"name": "Smoke Tester", "email": email, "phoneNumber": phone,
		"password": password, "role": "loadtest",
	}, ""); err != nil || status != http.StatusBadRequest {
		return fmt.Errorf("register (duplicate) expected 400, got %d err=%v", status, err)
	}

	token, err := login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	// Wrong password should be rejected with the same status as unknown email.
	s1, _, _ := doPostJSON(baseURL+"/api/auth/login", map[string]string{"email": email, "password": "wrong"}, "")
	s2, _, _ := doPostJSON(baseURL+"/api/auth/login", map[string]string{"email": "ghost_" + email, "password": password}, "")
	if s1 != http.StatusBadRequest || s2 != http.StatusBadRequest {
		return fmt.Errorf("credential failures expected 400/400, got %d/%d", s1, s2)
	}

	// Post create + read + delete round trip.
	id, status, err := createPost(token, "smoke post", "smoke description")
	if err != nil || status != http.StatusCreated {
		return fmt.Errorf("create post: status=%d err=%v", status, err)
	}
	resp, err := client.Get(fmt.Sprintf("%s/api/posts/%d", baseURL, id))
	if err != nil || resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get post: err=%v", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if status, err := deletePost(token, id); err != nil || status != http.StatusOK {
		return fmt.Errorf("delete post: status=%d err=%v", status, err)
	}

	log.Println("endpoint smoke tests passed: register/login/post basic scenarios verified")
	return nil
}

// ======================= concurrent load + reports =======================

func concurrentPostTest(workers, postsPerWorker int, outCSV, outHTML string) error {
	nonce := time.Now().UnixNano()
	email := fmt.Sprintf("load_%d@example.com", nonce%1000000)
	phone := fmt.Sprintf("1666%07d", nonce%10000000)
	password := "LoadPwd123!"

	if err := registerAccount("Load Tester", email, phone, password); err != nil {
		return err
	}
	token, err := login(email, password)
	if err != nil {
		return err
	}

	resCh := make(chan postResult, workers*postsPerWorker)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < postsPerWorker; i++ {
				start := time.Now()
				id, status, err := createPost(token,
					fmt.Sprintf("load w%d #%d", worker, i),
					"concurrent load test post")
				res := postResult{
					Worker:     worker,
					PostID:     id,
					StatusCode: status,
					Elapsed:    time.Since(start),
					Timestamp:  time.Now(),
				}
				if err != nil {
					res.ErrMessage = err.Error()
				}
				resCh <- res
			}
		}(w)
	}
	wg.Wait()
	close(resCh)

	csvFile, err := os.Create(outCSV)
	if err != nil {
		return err
	}
	defer csvFile.Close()
	csvWriter := csv.NewWriter(csvFile)
	defer csvWriter.Flush()
	_ = csvWriter.Write([]string{"Worker", "PostID", "StatusCode", "ErrMessage", "ElapsedMs", "Timestamp"})

	var all []postResult
	for r := range resCh {
		_ = csvWriter.Write([]string{
			fmt.Sprintf("%d", r.Worker),
			fmt.Sprintf("%d", r.PostID),
			fmt.Sprintf("%d", r.StatusCode),
			r.ErrMessage,
			fmt.Sprintf("%d", r.Elapsed.Milliseconds()),
			r.Timestamp.Format(time.RFC3339),
		})
		all = append(all, r)
	}
	csvWriter.Flush()

	if err := writeHTMLReport(outHTML, all); err != nil {
		log.Printf("write HTML report error: %v", err)
	}

	// Cleanup: delete everything the load created.
	for _, r := range all {
		if r.StatusCode == http.StatusCreated && r.PostID != 0 {
			_, _ = deletePost(token, r.PostID)
		}
	}
	return nil
}

// writeHTMLReport renders a basic table so failures are easy to eyeball.
func writeHTMLReport(path string, results []postResult) error {
	const tpl = `
<!doctype html>
<html>
<head><meta charset="utf-8"><title>Post Load Test Report</title>
<style>
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ddd; padding: 8px; text-align:left }
th { background: #f4f4f4; }
</style>
</head>
<body>
<h2>Post Load Test Report ({{ .GeneratedAt }})</h2>
<table>
<thead><tr><th>Worker</th><th>PostID</th><th>Status</th><th>Error</th><th>Elapsed</th><th>Timestamp</th></tr></thead>
<tbody>
{{ range .Rows }}
<tr>
<td>{{ .Worker }}</td>
<td>{{ .PostID }}</td>
<td>{{ .StatusCode }}</td>
<td>{{ .ErrMessage }}</td>
<td>{{ .Elapsed }}</td>
<td>{{ .Timestamp }}</td>
</tr>
{{ end }}
</tbody>
</table>
</body>
</html>`

	data := struct {
		GeneratedAt string
		Rows        []postResult
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        results,
	}

	t, err := template.New("report").Parse(tpl)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}

// ======================= main =======================

func main() {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		baseURL = v
	}
	workers := 5
	postsPerWorker := 10
	outCSV := "post_load_report.csv"
	outHTML := "post_load_report.html"

	if err := endpointSmokeTests(); err != nil {
		log.Fatalf("endpoint smoke tests failed: %v", err)
	}

	start := time.Now()
	if err := concurrentPostTest(workers, postsPerWorker, outCSV, outHTML); err != nil {
		log.Fatalf("concurrent test failed: %v", err)
	}
	log.Printf("concurrent test finished in %s, CSV=%s HTML=%s\n", time.Since(start), outCSV, outHTML)
	fmt.Println("All smoke and load tests completed successfully!")
}
