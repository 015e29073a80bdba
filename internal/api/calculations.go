package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"calc-service/internal/calculator"
	"calc-service/internal/logger"
	"calc-service/internal/models"
	"calc-service/internal/schemas"
	"calc-service/internal/storage"
)

func (h *Handler) createCalculation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req schemas.CalculationCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeDomainError(w, err)
		return
	}

	result, err := calculator.Compute(string(req.Type), req.A, req.B)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	calc := models.Calculation{
		A:      req.A,
		B:      req.B,
		Type:   string(req.Type),
		Result: result,
		UserID: req.UserID,
	}
	if err := h.calculations.Create(r.Context(), &calc); err != nil {
		if errors.Is(err, storage.ErrOwnerNotFound) {
			writeError(w, http.StatusBadRequest, "Owner user does not exist")
			return
		}
		log.Err(err).Msg("creating calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, calc)
}

func (h *Handler) getCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}

	calc, err := h.calculations.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("fetching calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, calc)
}

func (h *Handler) listCalculations(w http.ResponseWriter, r *http.Request) {
	offset, limit := listParams(r)

	calcs, err := h.calculations.List(r.Context(), offset, limit)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("listing calculations failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if calcs == nil {
		calcs = []models.Calculation{}
	}

	writeJSON(w, http.StatusOK, calcs)
}

// updateCalculation merges the partial payload onto the stored record, then
// revalidates and recomputes through the same path used at creation.
func (h *Handler) updateCalculation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}

	calc, err := h.calculations.GetByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}
	if err != nil {
		log.Err(err).Msg("fetching calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	var req schemas.CalculationUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	merged := req.Apply(calc)
	if err := merged.Validate(); err != nil {
		writeDomainError(w, err)
		return
	}

	result, err := calculator.Compute(string(merged.Type), merged.A, merged.B)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	calc.A = merged.A
	calc.B = merged.B
	calc.Type = string(merged.Type)
	calc.Result = result

	if err := h.calculations.Update(r.Context(), &calc); err != nil {
		if errors.Is(err, storage.ErrOwnerNotFound) {
			writeError(w, http.StatusBadRequest, "Owner user does not exist")
			return
		}
		log.Err(err).Msg("updating calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, calc)
}

func (h *Handler) deleteCalculation(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}

	err = h.calculations.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Calculation not found")
		return
	}
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("deleting calculation failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
