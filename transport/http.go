package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	dashboardapp "github.com/satriawidya/bloodlink/application/dashboard"
	distributionapp "github.com/satriawidya/bloodlink/application/distribution"
	facilityapp "github.com/satriawidya/bloodlink/application/facility"
	inventoryapp "github.com/satriawidya/bloodlink/application/inventory"
	notificationapp "github.com/satriawidya/bloodlink/application/notification"
	requestapp "github.com/satriawidya/bloodlink/application/request"
	userapp "github.com/satriawidya/bloodlink/application/user"
	"github.com/satriawidya/bloodlink/constant"
	"github.com/satriawidya/bloodlink/model"
	utilsContext "github.com/satriawidya/bloodlink/utils/context"
	"github.com/satriawidya/bloodlink/utils/errors"
	validatorx "github.com/satriawidya/bloodlink/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp         userapp.UserApp
	RequestApp      requestapp.RequestApp
	DistributionApp distributionapp.DistributionApp
	DashboardApp    dashboardapp.DashboardApp
	InventoryApp    inventoryapp.InventoryApp
	FacilityApp     facilityapp.FacilityApp
	NotificationApp notificationapp.NotificationApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Blood requests
	router.HandleFunc("/v1/blood-requests", rh.CreateRequest).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-requests/{id}", rh.GetRequest).Methods(http.MethodGet)
	router.HandleFunc("/v1/blood-requests/{id}/approve", rh.ApproveRequest).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-requests/{id}/reject", rh.RejectRequest).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-requests/{id}/cancel", rh.CancelRequest).Methods(http.MethodPost)

	// Blood distributions
	router.HandleFunc("/v1/blood-distributions/{request_id}", rh.Fulfill).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-distributions/{id}", rh.GetDistribution).Methods(http.MethodGet)
	router.HandleFunc("/v1/blood-distributions/{id}/status", rh.UpdateDistributionStatus).Methods(http.MethodPatch)
	router.HandleFunc("/v1/blood-distributions/{id}", rh.DeleteDistribution).Methods(http.MethodDelete)
	router.HandleFunc("/v1/blood-distributions/{id}/track", rh.TrackDistribution).Methods(http.MethodGet)

	// Facilities and blood banks
	router.HandleFunc("/v1/facilities", rh.CreateFacility).Methods(http.MethodPost)
	router.HandleFunc("/v1/facilities/{id}", rh.GetFacility).Methods(http.MethodGet)
	router.HandleFunc("/v1/facilities/{id}/blood-requests", rh.ListRequests).Methods(http.MethodGet)
	router.HandleFunc("/v1/facilities/{id}/blood-distributions", rh.ListDistributionsByFacility).Methods(http.MethodGet)
	router.HandleFunc("/v1/facilities/{id}/blood-banks", rh.ListBloodBanks).Methods(http.MethodGet)
	router.HandleFunc("/v1/blood-banks", rh.CreateBloodBank).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-banks/{id}/blood-distributions", rh.ListDistributionsByBloodBank).Methods(http.MethodGet)

	// Inventory
	router.HandleFunc("/v1/blood-banks/{id}/inventory", rh.AddLot).Methods(http.MethodPost)
	router.HandleFunc("/v1/blood-banks/{id}/inventory", rh.ListInventory).Methods(http.MethodGet)
	router.HandleFunc("/v1/blood-banks/{id}/inventory/expiring", rh.ListExpiring).Methods(http.MethodGet)

	// Dashboard
	router.HandleFunc("/v1/dashboard/{facility_id}/summary", rh.GetSummary).Methods(http.MethodGet)

	// Notifications
	router.HandleFunc("/v1/notifications", rh.ListNotifications).Methods(http.MethodGet)
	router.HandleFunc("/v1/notifications/{id}/read", rh.MarkNotificationRead).Methods(http.MethodPost)

	// Internal routes, guarded by static API key instead of user sessions
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/v1/dashboard/{facility_id}/refresh", rh.RefreshSummary).Methods(http.MethodPost)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(rh.UserApp))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRequest handler
// @Summary Create blood request
// @Description Submit a new blood request for a facility
// @Tags Requests
// @Accept json
// @Produce json
// @Param request body model.CreateRequestRequest true "Create Request"
// @Success 200 {object} model.BloodRequest
// @Failure 400 {object} errors.CustomError
// @Router /v1/blood-requests [post]
func (s *RestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.RequestApp.Create(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	res, err := s.RequestApp.ListByFacility(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.RequestApp.Approve(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.RequestApp.Reject(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	if err := s.RequestApp.Cancel(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// Fulfill handler
// @Summary Fulfill blood request
// @Description Ship a blood request from the caller's blood bank, deducting stock oldest expiry first
// @Tags Distributions
// @Accept json
// @Produce json
// @Param request_id path string true "Blood request ID"
// @Param request body model.FulfillRequest false "Optional shipment notes"
// @Success 200 {object} model.Distribution
// @Failure 400 {object} errors.CustomError
// @Failure 404 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /v1/blood-distributions/{request_id} [post]
func (s *RestHandler) Fulfill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	bloodBankID, err := s.UserApp.GetBloodBankID(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	// Facility-side users have no blood bank and cannot ship
	if bloodBankID == nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidOperation))
		return
	}

	var req model.FulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DistributionApp.Fulfill(ctx, mux.Vars(r)["request_id"], *bloodBankID, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) GetDistribution(w http.ResponseWriter, r *http.Request) {
	res, err := s.DistributionApp.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// UpdateDistributionStatus handler
// @Summary Update distribution status
// @Description Move a shipment through its lifecycle; returned shipments restore stock
// @Tags Distributions
// @Accept json
// @Produce json
// @Param id path string true "Distribution ID"
// @Param request body model.UpdateDistributionStatusRequest true "Status update"
// @Success 200 {object} response
// @Failure 409 {object} errors.CustomError
// @Router /v1/blood-distributions/{id}/status [patch]
func (s *RestHandler) UpdateDistributionStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateDistributionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.DistributionApp.UpdateStatus(r.Context(), mux.Vars(r)["id"], &req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) DeleteDistribution(w http.ResponseWriter, r *http.Request) {
	if err := s.DistributionApp.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func (s *RestHandler) TrackDistribution(w http.ResponseWriter, r *http.Request) {
	res, err := s.DistributionApp.Track(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListDistributionsByFacility(w http.ResponseWriter, r *http.Request) {
	res, err := s.DistributionApp.ListByFacility(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListDistributionsByBloodBank(w http.ResponseWriter, r *http.Request) {
	res, err := s.DistributionApp.ListByBloodBank(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.FacilityApp.CreateFacility(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	res, err := s.FacilityApp.GetFacility(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) CreateBloodBank(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBloodBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.FacilityApp.CreateBloodBank(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListBloodBanks(w http.ResponseWriter, r *http.Request) {
	res, err := s.FacilityApp.ListBloodBanks(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) AddLot(w http.ResponseWriter, r *http.Request) {
	var req model.AddLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.InventoryApp.AddLot(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	res, err := s.InventoryApp.ListByBloodBank(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	res, err := s.InventoryApp.ListExpiring(r.Context(), mux.Vars(r)["id"], days)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSummary handler
// @Summary Get dashboard summary
// @Description Daily stock, transfer and request metrics for a facility, served from cache
// @Tags Dashboard
// @Produce json
// @Param facility_id path string true "Facility ID"
// @Param date query string false "Day in YYYY-MM-DD, defaults to today"
// @Success 200 {object} model.SummaryResponse
// @Failure 404 {object} errors.CustomError
// @Router /v1/dashboard/{facility_id}/summary [get]
func (s *RestHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.GetSummary(r.Context(), mux.Vars(r)["facility_id"], r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) RefreshSummary(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.Refresh(r.Context(), mux.Vars(r)["facility_id"], r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.NotificationApp.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *RestHandler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.NotificationApp.MarkRead(ctx, mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}
