// Package mockserver is a local stand-in for api.kingtime.jp. It serves the
// four daily-workings endpoints with the same envelope semantics as the real
// service, backed by seeded employees and a sqlite punch store.
package mockserver

import (
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	v1 "github.com/kintai-tools/kingtime-go/kingtime/v1"
	"github.com/kintai-tools/kingtime-go/kingtime/v1/common"
)

type Server struct {
	Token    string
	Fixtures *Fixtures
	DB       *gorm.DB
	Log      zerolog.Logger
}

func New(token string, fixtures *Fixtures, db *gorm.DB, log zerolog.Logger) *Server {
	return &Server{Token: token, Fixtures: fixtures, DB: db, Log: log}
}

var registerValidations sync.Once

// Router builds the gin engine serving the versioned API surface.
func (s *Server) Router() *gin.Engine {
	registerValidations.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterValidation("punchcode", func(fl validator.FieldLevel) bool {
				_, err := common.ParseCode(fl.Field().String())
				return err == nil
			})
		}
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	api := r.Group("/v1.0")
	api.Use(s.auth())
	{
		api.GET("/employees/:code", s.getEmployee)
		api.GET("/daily-workings", s.listDailyWorkings)
		api.GET("/daily-workings/timerecord", s.listTimeRecords)
		api.POST("/daily-workings/timerecord/:key", s.postTimeRecord)
	}
	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()
		s.Log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(started)).
			Msg("request")
	}
}

// errorEnvelope answers with the same error shape the real API uses.
func errorEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"errors": []v1.ErrorData{{Message: message, Code: status}},
	})
}

func (s *Server) auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+s.Token {
			errorEnvelope(c, http.StatusUnauthorized, "invalid access token")
			return
		}
		c.Next()
	}
}

func (s *Server) employeeByCode(code string) *Employee {
	for i := range s.Fixtures.Employees {
		if s.Fixtures.Employees[i].Code == code {
			return &s.Fixtures.Employees[i]
		}
	}
	return nil
}

func (s *Server) employeeByKey(key string) *Employee {
	for i := range s.Fixtures.Employees {
		if s.Fixtures.Employees[i].Key == key {
			return &s.Fixtures.Employees[i]
		}
	}
	return nil
}

func (s *Server) getEmployee(c *gin.Context) {
	emp := s.employeeByCode(c.Param("code"))
	if emp == nil {
		errorEnvelope(c, http.StatusNotFound, "employee not found")
		return
	}
	c.JSON(http.StatusOK, v1.EmployeeDTO{
		LastName:  emp.LastName,
		FirstName: emp.FirstName,
		Key:       emp.Key,
	})
}

func (s *Server) listDailyWorkings(c *gin.Context) {
	var punches []Punch
	if err := s.DB.Order("date, time").Find(&punches).Error; err != nil {
		errorEnvelope(c, http.StatusInternalServerError, "storage failure")
		return
	}

	byDate := map[string]map[string][]Punch{}
	for _, p := range punches {
		if byDate[p.Date] == nil {
			byDate[p.Date] = map[string][]Punch{}
		}
		byDate[p.Date][p.EmployeeKey] = append(byDate[p.Date][p.EmployeeKey], p)
	}

	groups := []v1.DailyWorkingsDTO{}
	for _, date := range sortedKeys(byDate) {
		group := v1.DailyWorkingsDTO{Date: mustDateOnly(date)}
		for _, key := range sortedKeys(byDate[date]) {
			group.DailyWorkings = append(group.DailyWorkings, s.dailyWorking(date, key, nil))
		}
		groups = append(groups, group)
	}
	c.JSON(http.StatusOK, groups)
}

func (s *Server) listTimeRecords(c *gin.Context) {
	keysParam := c.Query("employeeKeys")
	if keysParam == "" {
		errorEnvelope(c, http.StatusBadRequest, "employeeKeys is required")
		return
	}
	keys := strings.Split(keysParam, ",")
	for _, key := range keys {
		if s.employeeByKey(key) == nil {
			errorEnvelope(c, http.StatusNotFound, "unknown employee key")
			return
		}
	}

	start, err := common.ParseDateOnly(c.Query("start"))
	if err != nil {
		errorEnvelope(c, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := common.ParseDateOnly(c.Query("end"))
	if err != nil {
		errorEnvelope(c, http.StatusBadRequest, "invalid end date")
		return
	}

	var punches []Punch
	err = s.DB.
		Where("employee_key IN ?", keys).
		Where("date BETWEEN ? AND ?", start.String(), end.String()).
		Order("time").
		Find(&punches).Error
	if err != nil {
		errorEnvelope(c, http.StatusInternalServerError, "storage failure")
		return
	}

	byDateKey := map[string]map[string][]Punch{}
	for _, p := range punches {
		if byDateKey[p.Date] == nil {
			byDateKey[p.Date] = map[string][]Punch{}
		}
		byDateKey[p.Date][p.EmployeeKey] = append(byDateKey[p.Date][p.EmployeeKey], p)
	}

	// one group per queried date and one daily working per queried employee,
	// present even when no punches were recorded
	groups := []v1.DailyWorkingsDTO{}
	for d := start.Time; !d.After(end.Time); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		group := v1.DailyWorkingsDTO{Date: mustDateOnly(date)}
		for _, key := range keys {
			group.DailyWorkings = append(group.DailyWorkings, s.dailyWorking(date, key, byDateKey[date][key]))
		}
		groups = append(groups, group)
	}
	c.JSON(http.StatusOK, groups)
}

func (s *Server) dailyWorking(date, key string, punches []Punch) v1.DailyWorkingDTO {
	dw := v1.DailyWorkingDTO{
		Date:        mustDateOnly(date),
		EmployeeKey: key,
	}
	if emp := s.employeeByKey(key); emp != nil {
		dw.CurrentDateEmployee = &v1.CurrentDateEmployeeDTO{
			Code:      emp.Code,
			LastName:  emp.LastName,
			FirstName: emp.FirstName,
		}
	}
	for _, p := range punches {
		code, err := common.ParseCode(p.Code)
		if err != nil {
			continue
		}
		dw.TimeRecord = append(dw.TimeRecord, v1.TimeRecordDTO{
			Time: common.NewJSTTime(p.Time),
			Code: code,
		})
	}
	return dw
}

type punchRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Time string `json:"time" binding:"required"`
	Code string `json:"code" binding:"required,punchcode"`
}

func (s *Server) postTimeRecord(c *gin.Context) {
	key := c.Param("key")
	if s.employeeByKey(key) == nil {
		errorEnvelope(c, http.StatusNotFound, "unknown employee key")
		return
	}

	var req punchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorEnvelope(c, http.StatusBadRequest, "invalid time record request")
		return
	}
	at, err := time.Parse(time.RFC3339, req.Time)
	if err != nil {
		errorEnvelope(c, http.StatusBadRequest, "invalid time")
		return
	}

	punch := Punch{
		EmployeeKey: key,
		Date:        req.Date,
		Time:        at,
		Code:        req.Code,
	}
	if err := s.DB.Create(&punch).Error; err != nil {
		errorEnvelope(c, http.StatusInternalServerError, "storage failure")
		return
	}

	s.Log.Info().
		Str("employeeKey", key).
		Str("date", req.Date).
		Str("code", req.Code).
		Msg("time record stored")

	c.JSON(http.StatusOK, gin.H{})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mustDateOnly(s string) common.DateOnly {
	d, _ := common.ParseDateOnly(s)
	return d
}
