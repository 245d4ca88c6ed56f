package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repair-tracker/internal/apperr"
	"repair-tracker/internal/domain"
	"repair-tracker/internal/transport/http/middleware"
	"repair-tracker/internal/transport/http/response"
)

type RepairJobHandler struct {
	jobs domain.RepairJobRepository
}

func NewRepairJobHandler(jobs domain.RepairJobRepository) *RepairJobHandler {
	return &RepairJobHandler{jobs: jobs}
}

func (h *RepairJobHandler) List(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, apperr.Auth("unauthorized"))
		return
	}
	jobs, err := h.jobs.ListByOwner(uid)
	if err != nil {
		response.Fail(c, apperr.Internal("list jobs", err))
		return
	}
	c.JSON(http.StatusOK, jobs)
}

type createJobReq struct {
	CustomerName     string   `json:"customer_name"`
	DeviceType       string   `json:"device_type"`
	DeviceModel      string   `json:"device_model"`
	IssueDescription string   `json:"issue_description"`
	Status           string   `json:"status"`
	Priority         string   `json:"priority"`
	EstimatedCost    *float64 `json:"estimated_cost"`
	ActualCost       *float64 `json:"actual_cost"`
	Notes            *string  `json:"notes"`
	Images           []string `json:"images"`
}

func (h *RepairJobHandler) Create(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, apperr.Auth("unauthorized"))
		return
	}
	var in createJobReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, bindErr(err, "invalid request body"))
		return
	}

	required := []struct{ name, value string }{
		{"customer_name", in.CustomerName},
		{"device_type", in.DeviceType},
		{"device_model", in.DeviceModel},
		{"issue_description", in.IssueDescription},
	}
	for _, f := range required {
		if f.value == "" {
			response.Fail(c, apperr.Validation("Missing required field: "+f.name))
			return
		}
	}

	if in.Status == "" {
		in.Status = domain.StatusDefault
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityDefault
	}

	job := &domain.RepairJob{
		UserID:           uid,
		CustomerName:     in.CustomerName,
		DeviceType:       in.DeviceType,
		DeviceModel:      in.DeviceModel,
		IssueDescription: in.IssueDescription,
		Status:           in.Status,
		Priority:         in.Priority,
		EstimatedCost:    in.EstimatedCost,
		ActualCost:       in.ActualCost,
		Notes:            in.Notes,
		Images:           domain.StringList(in.Images),
	}
	if job.Images == nil {
		job.Images = domain.StringList{}
	}
	if err := h.jobs.Create(job); err != nil {
		response.Fail(c, apperr.Internal("create job", err))
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update applies a partial update: only keys present in the body are written,
// so a caller can still set a field to an explicit empty or null value.
func (h *RepairJobHandler) Update(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, apperr.Auth("unauthorized"))
		return
	}
	jobID, ok := parseJobID(c.Param("id"))
	if !ok {
		response.Fail(c, apperr.NotFound("Job not found"))
		return
	}

	job, err := h.jobs.FindOwned(uid, jobID)
	if err != nil {
		response.Fail(c, apperr.Internal("find job", err))
		return
	}
	if job == nil {
		response.Fail(c, apperr.NotFound("Job not found"))
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindJSON(&raw); err != nil {
		response.Fail(c, bindErr(err, "invalid request body"))
		return
	}
	if err := applyJobPatch(job, raw); err != nil {
		response.Fail(c, err)
		return
	}

	if err := h.jobs.Update(job); err != nil {
		response.Fail(c, apperr.Internal("update job", err))
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *RepairJobHandler) Delete(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Fail(c, apperr.Auth("unauthorized"))
		return
	}
	jobID, ok := parseJobID(c.Param("id"))
	if !ok {
		response.Fail(c, apperr.NotFound("Job not found"))
		return
	}
	switch err := h.jobs.DeleteOwned(uid, jobID); {
	case errors.Is(err, domain.ErrNotFound):
		response.Fail(c, apperr.NotFound("Job not found"))
		return
	case err != nil:
		response.Fail(c, apperr.Internal("delete job", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

func parseJobID(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func applyJobPatch(job *domain.RepairJob, raw map[string]json.RawMessage) error {
	set := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return apperr.Validation("invalid value for field: " + key)
		}
		return nil
	}

	if err := set("customer_name", &job.CustomerName); err != nil {
		return err
	}
	if err := set("device_type", &job.DeviceType); err != nil {
		return err
	}
	if err := set("device_model", &job.DeviceModel); err != nil {
		return err
	}
	if err := set("issue_description", &job.IssueDescription); err != nil {
		return err
	}
	if err := set("status", &job.Status); err != nil {
		return err
	}
	if err := set("priority", &job.Priority); err != nil {
		return err
	}
	if err := set("estimated_cost", &job.EstimatedCost); err != nil {
		return err
	}
	if err := set("actual_cost", &job.ActualCost); err != nil {
		return err
	}
	if err := set("notes", &job.Notes); err != nil {
		return err
	}
	if err := set("images", &job.Images); err != nil {
		return err
	}
	if job.Images == nil {
		job.Images = domain.StringList{}
	}
	return nil
}
