package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

const testPassword = "Secret123"

func (t *testContext) theAPIServerIsRunning() error {
	if shared.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (t *testContext) iAmRegisteredAs(email string) error {
	body := fmt.Sprintf(`{"email":%q,"name":"Test User","password":%q}`, email, testPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("register returned %d: %s", t.response.status, t.response.raw)
	}
	token, ok := getFieldValue(t.response.body, "access_token").(string)
	if !ok || token == "" {
		return fmt.Errorf("register response has no access token: %s", t.response.raw)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) theDateIs(date string) error {
	parsed, err := valueobject.ParseDate(date)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(parsed)
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return t.executeRequest(method, t.replacePlaceholders(path), []byte(t.replacePlaceholders(body.Content)))
}

func (t *testContext) theRecurringWorkerRuns() error {
	output, err := shared.injector.RecurringWorker.RunOnce(context.Background(), t.timeMock.Now())
	if err != nil {
		return fmt.Errorf("recurring run failed: %w", err)
	}
	t.lastRun = output
	return nil
}

// replacePlaceholders substitutes {name} with remembered values.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.variables {
		content = strings.ReplaceAll(content, "{"+name+"}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, shared.server.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var body any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return fmt.Errorf("response is not valid JSON: %w", err)
		}
	}

	t.response = &response{status: resp.StatusCode, body: body, raw: raw}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.status, t.response.raw)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	if actual := fmt.Sprintf("%v", value); actual != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %s", field, t.response.raw)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' has %d items, want %d", field, len(items), count)
	}
	return nil
}

func (t *testContext) iRememberTheResponseFieldAs(field, name string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %s", field, t.response.raw)
	}
	t.variables[name] = fmt.Sprintf("%v", value)
	return nil
}

func (t *testContext) theRunShouldReport(created, skipped, failed int) error {
	if t.lastRun == nil {
		return fmt.Errorf("the recurring worker has not run")
	}
	if t.lastRun.Created != created || t.lastRun.Skipped != skipped || t.lastRun.Failed != failed {
		return fmt.Errorf("run reported created=%d skipped=%d failed=%d, want %d/%d/%d",
			t.lastRun.Created, t.lastRun.Skipped, t.lastRun.Failed, created, skipped, failed)
	}
	return nil
}

func (t *testContext) theTableShouldContainRows(table string, quantity int) error {
	count, err := shared.db.Count(table)
	if err != nil {
		return err
	}
	if count != int64(quantity) {
		return fmt.Errorf("table %s has %d rows, want %d", table, count, quantity)
	}
	return nil
}

// getFieldValue walks a decoded JSON document along a dot separated path.
// Numeric segments index into lists.
func getFieldValue(object any, dotSeparatedField string) any {
	current := object
	for _, part := range strings.Split(dotSeparatedField, ".") {
		switch node := current.(type) {
		case map[string]any:
			current = node[part]
		case []any:
			index, err := strconv.Atoi(part)
			if err != nil || index < 0 || index >= len(node) {
				return nil
			}
			current = node[index]
		default:
			return nil
		}
	}
	return current
}
