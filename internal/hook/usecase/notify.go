package usecase

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"forge-events/internal/hook"
	"forge-events/internal/hook/repository"
	"forge-events/internal/model"
)

// Notify resolves the endpoint set and posts the payload to each one in
// turn. Delivery is strictly sequential; a dead endpoint costs its own
// timeout and nothing more.
func (uc *implUseCase) Notify(ctx context.Context, sc model.Scope, input hook.NotifyInput) (hook.NotifyOutput, error) {
	endpoints, err := uc.resolveEndpoints(ctx, input)
	if err != nil {
		return hook.NotifyOutput{}, err
	}

	out := hook.NotifyOutput{}
	for _, endpoint := range endpoints {
		status, message := uc.deliver(ctx, endpoint, input.Payload)

		if err := uc.repo.RecordOutcome(ctx, recordOutcome(endpoint, status, message)); err != nil {
			uc.l.Warnf(ctx, "uc.Notify RecordOutcome %s: %v", endpoint.URL, err)
		}

		if status == model.WebHookStatusSuccess {
			out.Delivered++
			uc.l.Infof(ctx, "uc.Notify: delivered to %s (%s)", endpoint.URL, message)
		} else {
			out.Failed++
			uc.l.Warnf(ctx, "uc.Notify: delivery to %s failed (%s)", endpoint.URL, message)
		}
	}
	return out, nil
}

func (uc *implUseCase) resolveEndpoints(ctx context.Context, input hook.NotifyInput) ([]model.WebHook, error) {
	if input.EndpointURL != "" {
		h, err := uc.repo.HookByURL(ctx, input.RepositoryID, input.EndpointURL)
		if err != nil {
			return nil, err
		}
		if h.ID == "" {
			uc.l.Errorf(ctx, "uc.Notify: %v: %s", hook.ErrHookNotFound, input.EndpointURL)
			return nil, nil
		}
		return []model.WebHook{h}, nil
	}

	global, err := uc.repo.GlobalHooks(ctx)
	if err != nil {
		return nil, err
	}
	own, err := uc.repo.RepositoryHooks(ctx, input.RepositoryID)
	if err != nil {
		return nil, err
	}
	return append(global, own...), nil
}

// deliver performs the single attempt for one endpoint and classifies the
// result. It never returns an error: every outcome is a status plus a
// short human-readable message.
func (uc *implUseCase) deliver(ctx context.Context, endpoint model.WebHook, payload []byte) (model.WebHookStatus, string) {
	form := url.Values{"payload": {string(payload)}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return model.WebHookStatusFailure, "Socket error"
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := uc.client.Do(req)
	if err != nil {
		return model.WebHookStatusFailure, classifyNetworkError(err)
	}
	defer resp.Body.Close()

	message := fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	if successfulResponse(resp.StatusCode) {
		return model.WebHookStatusSuccess, message
	}
	return model.WebHookStatusFailure, message
}

// successfulResponse treats any 2xx and the common redirect statuses as a
// delivered notification.
func successfulResponse(code int) bool {
	switch {
	case code >= 200 && code < 300:
		return true
	case code == http.StatusMovedPermanently,
		code == http.StatusFound,
		code == http.StatusTemporaryRedirect:
		return true
	}
	return false
}

func classifyNetworkError(err error) string {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return "Connection refused"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "Connection timed out"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Connection timed out"
	}
	return "Socket error"
}

func recordOutcome(endpoint model.WebHook, status model.WebHookStatus, message string) repository.RecordOutcomeOptions {
	return repository.RecordOutcomeOptions{
		HookID:      endpoint.ID,
		Status:      status,
		Message:     message,
		AttemptedAt: time.Now().UTC(),
	}
}
