package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiquest/KrishiQuest_Go/internal/chat"
	"github.com/krishiquest/KrishiQuest_Go/internal/database/memory"
	"github.com/krishiquest/KrishiQuest_Go/internal/domain"
	"github.com/krishiquest/KrishiQuest_Go/internal/event"
	"github.com/krishiquest/KrishiQuest_Go/internal/farm"
	"github.com/krishiquest/KrishiQuest_Go/internal/handler"
	"github.com/krishiquest/KrishiQuest_Go/internal/market"
	"github.com/krishiquest/KrishiQuest_Go/internal/task"
	"github.com/krishiquest/KrishiQuest_Go/internal/weather"
	"github.com/krishiquest/KrishiQuest_Go/internal/worker"
)

const testAPIKey = "test-key"

type apiClient struct {
	t   *testing.T
	srv *httptest.Server
}

func (c apiClient) do(method, path, body string, out interface{}) int {
	c.t.Helper()
	req, err := http.NewRequest(method, c.srv.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set(HeaderAPIKey, testAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func newTestAPI(t *testing.T) apiClient {
	t.Helper()

	bot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"reply":"पानी सुबह दें"}`))
	}))
	t.Cleanup(bot.Close)

	store := memory.NewStore()
	bus := event.NewMemoryBus()
	tasks := task.NewService(store, nil, bus)
	growth := worker.NewGrowthWorker()
	farmSvc := farm.NewService(store, tasks, growth, bus, farm.Options{GrowthDelay: 20 * time.Millisecond})
	growth.Start(farmSvc)
	t.Cleanup(func() { _ = growth.Shutdown(context.Background()) })

	chatClient, err := chat.NewClient(chat.Config{Endpoint: bot.URL, Timeout: time.Second})
	require.NoError(t, err)

	router := NewRouter(testAPIKey, nil, Services{
		Farm:    farmSvc,
		Tasks:   tasks,
		Weather: weather.NewCycle(bus),
		Chat:    chatClient,
		Market:  market.NewService(nil),
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return apiClient{t: t, srv: srv}
}

func TestRouter_FarmFlow(t *testing.T) {
	api := newTestAPI(t)

	var field domain.Field
	require.Equal(t, http.StatusCreated, api.do("POST", "/api/v1/field/scan",
		`{"player_id":"p1","width":2,"height":2,"moisture_level":55,"soil_condition":"loamy"}`, &field))
	require.Len(t, field.Tiles, 4)
	tileID := field.Tiles[0].ID

	click := func() domain.ClickResult {
		var res domain.ClickResult
		require.Equal(t, http.StatusOK, api.do("POST", "/api/v1/farm/click", `{"player_id":"p1","tile_id":"`+tileID+`"}`, &res))
		return res
	}
	useTool := func(tool string) {
		require.Equal(t, http.StatusOK, api.do("POST", "/api/v1/farm/tool", `{"player_id":"p1","tool":"`+tool+`"}`, nil))
	}

	// default tool is plough
	res := click()
	assert.True(t, res.Changed)
	assert.Equal(t, domain.TileSoil, res.Tile.Type)
	assert.Equal(t, "🎉 Task completed: Plough your first tile", res.Notification)

	// clicking the highlighted tile again clears the highlight without acting
	res = click()
	assert.False(t, res.Selected)
	assert.False(t, res.Changed)

	useTool("water")
	res = click()
	assert.False(t, res.Changed, "water on soil is not a transition")

	useTool("sow")
	click() // deselect
	res = click()
	assert.True(t, res.Changed)
	assert.Equal(t, domain.TilePlanted, res.Tile.Type)

	useTool("water")
	click()
	res = click()
	assert.True(t, res.Changed)
	assert.True(t, res.GrowthPending)

	require.Eventually(t, func() bool {
		var f domain.Field
		api.do("GET", "/api/v1/field?player_id=p1", "", &f)
		tile, _ := f.Tile(tileID)
		return tile != nil && tile.Type == domain.TileGrown
	}, 2*time.Second, 10*time.Millisecond)

	useTool("harvest")
	click()
	res = click()
	assert.Equal(t, domain.TileHarvested, res.Tile.Type)

	var progress domain.FieldProgress
	require.Equal(t, http.StatusOK, api.do("GET", "/api/v1/field/progress?player_id=p1", "", &progress))
	assert.Equal(t, domain.FieldProgress{Ploughed: 1, Planted: 1, Watered: 1, Harvested: 1, Total: 4, PercentComplete: 25}, progress)

	var points handler.PointsResponse
	require.Equal(t, http.StatusOK, api.do("GET", "/api/v1/points?player_id=p1", "", &points))
	assert.Equal(t, 60, points.Points)

	var tasks []domain.Task
	require.Equal(t, http.StatusOK, api.do("GET", "/api/v1/tasks?player_id=p1", "", &tasks))
	for _, tk := range tasks {
		assert.True(t, tk.Completed, tk.Title)
	}
}

func TestRouter_ErrorsAndAuth(t *testing.T) {
	api := newTestAPI(t)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotFound, api.do("GET", "/api/v1/field?player_id=ghost", "", &errBody))

	assert.Equal(t, http.StatusBadRequest, api.do("POST", "/api/v1/field/scan", `{"player_id":"p1","width":0,"height":3}`, nil))

	resp, err := http.Get(api.srv.URL + "/api/v1/weather")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(api.srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType))
}

func TestRouter_ChatAndMarket(t *testing.T) {
	api := newTestAPI(t)

	var chatResp struct {
		Messages []domain.ChatMessage `json:"messages"`
	}
	require.Equal(t, http.StatusOK, api.do("POST", "/api/v1/chat/message", `{"player_id":"p1","message":"कब पानी दें?"}`, &chatResp))
	require.Len(t, chatResp.Messages, 2)
	assert.Equal(t, "पानी सुबह दें", chatResp.Messages[1].Text)

	var errBody map[string]string
	assert.Equal(t, http.StatusNotImplemented, api.do("POST", "/api/v1/chat/listen", `{"player_id":"p1"}`, &errBody))

	var prices []domain.MarketPrice
	require.Equal(t, http.StatusOK, api.do("GET", "/api/v1/market/prices?category=Vegetables&demand=High", "", &prices))
	assert.Len(t, prices, 2)

	var weatherState domain.WeatherState
	require.Equal(t, http.StatusOK, api.do("GET", "/api/v1/weather", "", &weatherState))
	assert.Equal(t, domain.WeatherSunny, weatherState.Effect)
}

func TestRouter_RecoversHandlerPanic(t *testing.T) {
	router := NewRouter(testAPIKey, nil, Services{Farm: panickingFarm{}})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	api := apiClient{t: t, srv: srv}

	assert.Equal(t, http.StatusInternalServerError, api.do("GET", "/api/v1/field?player_id=p1", "", nil))
	assert.Equal(t, http.StatusOK, api.do("GET", "/healthz", "", nil), "server keeps serving")
}

type panickingFarm struct{ farm.Service }

func (panickingFarm) GetField(context.Context, string) (*domain.Field, error) {
	panic("boom")
}
