package dispatch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"github.com/vokinneberg/ocean-query/internal/fallback"
	"github.com/vokinneberg/ocean-query/internal/remote"
	"github.com/vokinneberg/ocean-query/internal/types"
)

func TestDispatcher_Resolve(t *testing.T) {
	remoteResult := types.QueryResult{
		OK:         true,
		Answer:     "Remote says 27.1°C",
		DataSource: "erddap",
	}
	localResult := types.QueryResult{
		OK:         true,
		Answer:     "Local canned answer",
		DataSource: types.DataSourceFallbackArgo,
	}

	tests := []struct {
		name       string
		setupMocks func(*MockRemoteResolver, *MockLocalResolver)
		want       types.QueryResult
	}{
		{
			name: "remote success",
			setupMocks: func(r *MockRemoteResolver, l *MockLocalResolver) {
				r.EXPECT().Resolve(gomock.Any(), "sea temperature").Return(remoteResult, nil)
			},
			want: remoteResult,
		},
		{
			name: "network error falls back",
			setupMocks: func(r *MockRemoteResolver, l *MockLocalResolver) {
				r.EXPECT().Resolve(gomock.Any(), "sea temperature").
					Return(types.QueryResult{}, &remote.NetworkError{Err: errors.New("connection refused")})
				l.EXPECT().ResolveLocally(gomock.Any(), "sea temperature").Return(localResult)
			},
			want: localResult,
		},
		{
			name: "protocol error falls back",
			setupMocks: func(r *MockRemoteResolver, l *MockLocalResolver) {
				r.EXPECT().Resolve(gomock.Any(), "sea temperature").
					Return(types.QueryResult{}, &remote.ProtocolError{StatusCode: http.StatusBadGateway})
				l.EXPECT().ResolveLocally(gomock.Any(), "sea temperature").Return(localResult)
			},
			want: localResult,
		},
		{
			name: "parse error falls back",
			setupMocks: func(r *MockRemoteResolver, l *MockLocalResolver) {
				r.EXPECT().Resolve(gomock.Any(), "sea temperature").
					Return(types.QueryResult{}, &remote.ParseError{Err: errors.New("unexpected EOF")})
				l.EXPECT().ResolveLocally(gomock.Any(), "sea temperature").Return(localResult)
			},
			want: localResult,
		},
		{
			name: "invalid fallback result becomes error result",
			setupMocks: func(r *MockRemoteResolver, l *MockLocalResolver) {
				r.EXPECT().Resolve(gomock.Any(), "sea temperature").
					Return(types.QueryResult{}, errors.New("something odd"))
				l.EXPECT().ResolveLocally(gomock.Any(), "sea temperature").
					Return(types.QueryResult{OK: true, DataSource: types.DataSourceFallbackArgo})
			},
			want: types.ErrorResult("sea temperature"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRemote := NewMockRemoteResolver(ctrl)
			mockLocal := NewMockLocalResolver(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockRemote, mockLocal)
			}

			d := NewDispatcher(mockRemote, mockLocal, zap.NewNop())
			got := d.Resolve(context.Background(), "sea temperature")

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatcher_ResolveWithoutRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	want := types.QueryResult{OK: true, Answer: "simulated", DataSource: types.DataSourceFallbackGeneric}
	mockLocal := NewMockLocalResolver(ctrl)
	mockLocal.EXPECT().ResolveLocally(gomock.Any(), "tides").Return(want)

	got := NewDispatcher(nil, mockLocal, nil).Resolve(context.Background(), "tides")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

// The fallback path must produce exactly what the standalone resolver does.
func TestDispatcher_FailingRemoteMatchesLocal(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer failing.Close()

	unreachable := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	unreachableURL := unreachable.URL
	unreachable.Close()

	remotes := map[string]RemoteResolver{
		"status 500":    remote.NewClient(failing.URL, time.Second),
		"network error": remote.NewClient(unreachableURL, time.Second),
	}

	queries := []string{
		"Show me sea surface temperature in the Arabian Sea",
		"What's the salinity near Mumbai in the last month?",
		"Compare BGC parameters in the Arabian Sea for the last 6 months",
		"What are the nearest ARGO floats to this location?",
		"random unrelated text",
	}

	local := fallback.NewResolver(fallback.NoDelay(), nil)

	for name, r := range remotes {
		t.Run(name, func(t *testing.T) {
			d := NewDispatcher(r, local, nil)
			for _, q := range queries {
				got := d.Resolve(context.Background(), q)
				want := local.ResolveLocally(context.Background(), q)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", q, diff)
				}
			}
		})
	}
}

func TestDispatcher_RandomTextWithFailingRemote(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()

	d := NewDispatcher(remote.NewClient(failing.URL, time.Second), fallback.NewResolver(fallback.NoDelay(), nil), nil)
	got := d.Resolve(context.Background(), "random unrelated text")

	if got.DataSource != types.DataSourceFallbackGeneric {
		t.Errorf("Resolve() DataSource = %q, want %q", got.DataSource, types.DataSourceFallbackGeneric)
	}
	if got.DatasetSummary != nil {
		t.Errorf("Resolve() DatasetSummary = %+v, want nil", got.DatasetSummary)
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &remote.NetworkError{Err: errors.New("dial tcp")}, want: "network"},
		{err: &remote.ProtocolError{StatusCode: 404}, want: "protocol"},
		{err: &remote.ParseError{Err: errors.New("bad json")}, want: "parse"},
		{err: errors.New("plain"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := errorKind(tt.err); got != tt.want {
				t.Errorf("errorKind() = %q, want %q", got, tt.want)
			}
		})
	}
}
