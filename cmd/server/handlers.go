package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rhyrak/timetable-wizard/internal/catalog"
	"github.com/rhyrak/timetable-wizard/internal/csvio"
	"github.com/rhyrak/timetable-wizard/internal/preference"
	"github.com/rhyrak/timetable-wizard/internal/scheduler"
	"github.com/rhyrak/timetable-wizard/internal/store"
	"github.com/rhyrak/timetable-wizard/pkg/model"
)

func (s *server) handlePostCatalog(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing file(s): files"})
		return
	}

	var all []*model.Course
	names := make([]string, 0, len(files))
	for _, fh := range files {
		delim, err := csvio.DelimiterFor(fh.Filename)
		if err != nil {
			s.fail(ctx, err)
			return
		}
		f, err := fh.Open()
		if err != nil {
			s.fail(ctx, err)
			return
		}
		courses, err := csvio.LoadCatalog(f, delim)
		f.Close()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", fh.Filename, err)})
			return
		}
		all = append(all, courses...)
		names = append(names, fh.Filename)
	}

	data, err := csvio.MarshalCatalog(all)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	rec, err := s.store.SaveCatalog(ctx, strings.Join(names, ","), data)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	s.log.Info().Str("catalog", rec.ID).Int("files", len(files)).Int("rows", len(all)).Msg("catalog uploaded")

	ctx.JSON(http.StatusOK, gin.H{
		"id":   rec.ID,
		"rows": len(all),
	})
}

func (s *server) scoredCatalog(ctx *gin.Context) (*catalog.Catalog, bool) {
	w, err := s.queryWeights(ctx)
	if err != nil {
		s.fail(ctx, err)
		return nil, false
	}
	courses, err := s.loadCourses(ctx, ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return nil, false
	}
	if err := preference.Apply(courses, w); err != nil {
		s.fail(ctx, err)
		return nil, false
	}
	return catalog.New(courses), true
}

func (s *server) handleSearch(ctx *gin.Context) {
	cat, ok := s.scoredCatalog(ctx)
	if !ok {
		return
	}
	hits := cat.Search(ctx.Query("q"))
	if hits == nil {
		hits = []*model.Course{}
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": hits})
}

func (s *server) handleRecommendations(ctx *gin.Context) {
	k := 5
	if raw, ok := ctx.GetQuery("k"); ok {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "k must be a non-negative integer"})
			return
		}
		k = n
	}
	cat, ok := s.scoredCatalog(ctx)
	if !ok {
		return
	}
	recs := cat.Recommend(splitIDs(ctx.Query("chosen")), k)
	if recs == nil {
		recs = []*model.Course{}
	}
	ctx.JSON(http.StatusOK, gin.H{"courses": recs})
}

type scheduleRequest struct {
	CatalogID string `json:"catalogId"`
	scheduler.Request
}

func (s *server) handlePostSchedule(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	var req scheduleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.CatalogID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "catalogId is required"})
		return
	}

	courses, err := s.loadCourses(ctx, req.CatalogID)
	if err != nil {
		s.fail(ctx, err)
		return
	}

	cfg := s.cfg.SchedulerConfiguration()
	s.log.Debug().Str("catalog", req.CatalogID).Int("groups", len(req.Groups)).
		Int64("combinations", scheduler.Combinations(model.IDs(req.Groups))).Msg("generating schedules")

	res, err := scheduler.Run(ctx, courses, req.Request, cfg)
	if err != nil {
		rec, saveErr := s.store.SaveSchedule(ctx, store.Schedule{
			CatalogID: req.CatalogID,
			Request:   string(body),
			Status:    store.StatusFailed,
			Report:    err.Error(),
		})
		if saveErr != nil {
			s.log.Error().Err(saveErr).Msg("failed to record failed run")
		} else {
			ctx.Header("X-Schedule-Id", rec.ID)
		}
		s.fail(ctx, err)
		return
	}

	data, err := csvio.ExportSchedulesString(res.Candidates, catalog.New(courses))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	rec, err := s.store.SaveSchedule(ctx, store.Schedule{
		CatalogID: req.CatalogID,
		Request:   string(body),
		Data:      data,
		Status:    store.StatusSuccess,
		Report:    res.Report,
	})
	if err != nil {
		s.fail(ctx, err)
		return
	}
	if !res.Valid {
		s.log.Warn().Str("schedule", rec.ID).Str("report", res.Report).Msg("generated schedules failed validation")
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":        rec.ID,
		"schedules": res.Candidates,
		"report":    res.Report,
	})
}

func (s *server) handleGetSchedule(ctx *gin.Context) {
	all, err := s.store.ListSchedules(ctx)
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"schedules": all,
	})
}

func (s *server) handleGetScheduleWithId(ctx *gin.Context) {
	rec, err := s.store.GetSchedule(ctx, ctx.Param("id"))
	if err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rec)
}

func (s *server) handleDeleteScheduleWithId(ctx *gin.Context) {
	if err := s.store.DeleteSchedule(ctx, ctx.Param("id")); err != nil {
		s.fail(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
