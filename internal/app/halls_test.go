package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ardaguler/theatre-reservation-system/api"
	"github.com/ardaguler/theatre-reservation-system/internal/domain"
	"github.com/ardaguler/theatre-reservation-system/internal/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/mock"
)

func TestCreateTheatreHall(t *testing.T) {
	tests := []struct {
		name           string
		body           api.CreateTheatreHallRequest
		setupMocks     func(*mocks.MockTheatreHallRepo)
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.TheatreHallResponse
	}{
		{
			name: "creates hall and reports capacity",
			body: api.CreateTheatreHallRequest{Name: "Blue Hall", Rows: 15, SeatsInRow: 20},
			setupMocks: func(hallRepo *mocks.MockTheatreHallRepo) {
				hallRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.TheatreHall")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*domain.TheatreHall).ID = 3
					}).
					Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.TheatreHallResponse{
				Id:         3,
				Name:       "Blue Hall",
				Rows:       15,
				SeatsInRow: 20,
				Capacity:   300,
			},
		},
		{
			name:           "validation error - zero rows",
			body:           api.CreateTheatreHallRequest{Name: "Blue Hall", Rows: 0, SeatsInRow: 20},
			setupMocks:     func(*mocks.MockTheatreHallRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name:           "validation error - negative seats",
			body:           api.CreateTheatreHallRequest{Name: "Blue Hall", Rows: 15, SeatsInRow: -1},
			setupMocks:     func(*mocks.MockTheatreHallRepo) {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hallRepo := &mocks.MockTheatreHallRepo{}
			tt.setupMocks(hallRepo)

			app := newTestApplication(func(a *Application) {
				a.hallRepo = hallRepo
			})

			w, r := executeRequest(t, http.MethodPost, "/theatre-halls", tt.body)
			r = requestWithUser(r, domain.User{ID: 1, IsStaff: true})

			app.CreateTheatreHall(w, r)

			if got := w.Code; got != tt.wantStatus {
				t.Errorf("CreateTheatreHall() status = %v, want %v", got, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response api.TheatreHallResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("CreateTheatreHall() response mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func TestGetTheatreHalls(t *testing.T) {
	halls := []domain.TheatreHall{
		{ID: 1, Name: "Blue Hall", Rows: 15, SeatsInRow: 20},
		{ID: 2, Name: "Studio", Rows: 5, SeatsInRow: 8},
	}

	hallRepo := &mocks.MockTheatreHallRepo{}
	hallRepo.On("GetAll", mock.Anything, domain.Pagination{Page: 1, PageSize: 10}).
		Return(halls, domain.NewMetadata(2, 1, 10), nil)

	app := newTestApplication(func(a *Application) {
		a.hallRepo = hallRepo
	})

	w, r := executeRequest(t, http.MethodGet, "/theatre-halls", nil)
	r = requestWithUser(r, domain.User{ID: 11})

	app.GetTheatreHalls(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("GetTheatreHalls() status = %v, want %v", w.Code, http.StatusOK)
	}

	var response api.TheatreHallListResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	want := api.TheatreHallListResponse{
		TheatreHalls: []api.TheatreHallResponse{
			{Id: 1, Name: "Blue Hall", Rows: 15, SeatsInRow: 20, Capacity: 300},
			{Id: 2, Name: "Studio", Rows: 5, SeatsInRow: 8, Capacity: 40},
		},
		Metadata: api.Metadata{
			CurrentPage:  1,
			FirstPage:    1,
			LastPage:     1,
			PageSize:     10,
			TotalRecords: 2,
		},
	}

	if diff := cmp.Diff(want, response); diff != "" {
		t.Errorf("GetTheatreHalls() response mismatch (-want +got):\n%s", diff)
	}
}
