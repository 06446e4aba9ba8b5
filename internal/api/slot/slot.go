package slot

import (
	"errors"
	"net/http"

	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/converter"
	"slot_backend/internal/model"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"

	"github.com/rs/zerolog/hlog"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin кнопка SPIN
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	hud, err := h.serv.Spin(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*hud))
}

// ToggleAuto кнопка AUTO
func (h *Handler) ToggleAuto(w http.ResponseWriter, r *http.Request) {
	hud, err := h.serv.ToggleAuto(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*hud))
}

// Bet кнопка BET; тело {"tier": n} необязательно
func (h *Handler) Bet(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BetRequest](r.Body)
	if err != nil && !errors.Is(err, req.ErrEmptyBody) {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	hud, err := h.serv.ChangeBet(r.Context(), converter.ToBetChange(payload))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*hud))
}

func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	hud, err := h.serv.State(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStateResponse(*hud))
}

func (h *Handler) LastResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.serv.LastResult(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToResultResponse(*res))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.serv.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*st))
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrRoundInProgress):
		resp.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrInsufficientBalance):
		resp.WriteError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, model.ErrInvalidBetTier):
		resp.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNoResult):
		resp.WriteError(w, http.StatusNotFound, err.Error())
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("slot request failed")
		resp.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}
