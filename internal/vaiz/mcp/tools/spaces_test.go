package tools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSpace(t *testing.T) {
	client, api := setupClient(t, map[string]handlerFunc{
		"getSpace": func(body map[string]any) (int, any) {
			return http.StatusOK, map[string]any{"space": map[string]any{"id": body["spaceId"], "name": "Main"}}
		},
	})

	result, err := getSpace(context.Background(), client, createTestRequest(nil))
	require.NoError(t, err)
	var resp models.SpaceResponse
	decodeResult(t, result, &resp)
	assert.Equal(t, "space-1", resp.Space.ID)

	_, err = getSpace(context.Background(), client, createTestRequest(map[string]interface{}{"spaceId": "other"}))
	require.NoError(t, err)
	assert.Equal(t, "other", api.last("getSpace")["spaceId"])
}

func TestBoardTools(t *testing.T) {
	client, api := setupClient(t, map[string]handlerFunc{
		"createBoardType":  reply(map[string]any{"boardType": map[string]any{"id": "bt1", "label": "Bug"}}),
		"editBoardType":    reply(map[string]any{"boardType": map[string]any{"id": "bt1", "label": "Defect"}}),
		"createBoardGroup": reply(map[string]any{"boardGroups": []any{map[string]any{"id": "g1", "name": "Todo"}}}),
		"editBoardGroup":   reply(map[string]any{"boardGroups": []any{map[string]any{"id": "g1", "name": "Done"}}}),
	})
	ctx := context.Background()

	t.Run("create_board_type", func(t *testing.T) {
		result, err := createBoardType(ctx, client, createTestRequest(map[string]interface{}{
			"boardId": "b1",
			"name":    "Bug",
			"color":   "Red",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, resultText(t, result))

		body := api.last("createBoardType")
		assert.Equal(t, "Bug", body["label"])
		assert.Equal(t, "Red", body["color"])
		assert.NotContains(t, body, "name")
		assert.NotContains(t, body, "icon")
	})

	t.Run("edit_board_type", func(t *testing.T) {
		result, err := editBoardType(ctx, client, createTestRequest(map[string]interface{}{
			"boardId": "b1",
			"typeId":  "bt1",
			"name":    "Defect",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, resultText(t, result))
		body := api.last("editBoardType")
		assert.Equal(t, "bt1", body["boardTypeId"])
		assert.Equal(t, "Defect", body["label"])
	})

	t.Run("create_board_group", func(t *testing.T) {
		result, err := createBoardGroup(ctx, client, createTestRequest(map[string]interface{}{
			"boardId":      "b1",
			"name":         "Todo",
			"boardTypeIds": []interface{}{"bt1"},
		}))
		require.NoError(t, err)
		var resp models.BoardGroupsResponse
		decodeResult(t, result, &resp)
		assert.Equal(t, "g1", resp.BoardGroups[0].ID)
		assert.Equal(t, []any{"bt1"}, api.last("createBoardGroup")["boardTypeIds"])
	})

	t.Run("edit_board_group", func(t *testing.T) {
		result, err := editBoardGroup(ctx, client, createTestRequest(map[string]interface{}{
			"boardId": "b1",
			"groupId": "g1",
			"name":    "Done",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError, resultText(t, result))
		assert.Equal(t, "g1", api.last("editBoardGroup")["boardGroupId"])
	})

	t.Run("обязательные поля", func(t *testing.T) {
		result, err := editBoardGroup(ctx, client, createTestRequest(map[string]interface{}{"name": "x"}))
		require.NoError(t, err)
		assert.Equal(t, "[2007] invalid request: groupId, boardId are required", resultText(t, result))
	})
}

func TestCreateMilestone(t *testing.T) {
	client, api := setupClient(t, map[string]handlerFunc{
		"createMilestone": reply(map[string]any{"milestone": map[string]any{"id": "ms1", "name": "v1"}}),
	})

	result, err := createMilestone(context.Background(), client, createTestRequest(map[string]interface{}{
		"name":    "v1",
		"project": "p1",
		"board":   "b1",
		"tags":    []interface{}{"release"},
	}))
	require.NoError(t, err)

	var resp models.MilestoneResponse
	decodeResult(t, result, &resp)
	assert.Equal(t, "ms1", resp.Milestone.ID)
	body := api.last("createMilestone")
	assert.Equal(t, "p1", body["project"])
	assert.Equal(t, []any{"release"}, body["tags"])
}

func TestDownloadImage(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	var accept string
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		accept = r.Header.Get("Accept")
		_, _ = w.Write(image)
	}))
	defer files.Close()

	client, _ := setupClient(t, nil)

	t.Run("успех", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pic.jpg")
		result, err := downloadImage(context.Background(), client, createTestRequest(map[string]interface{}{
			"imageUrl":  files.URL + "/pic.jpg",
			"localPath": path,
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)
		require.Len(t, result.Content, 2)

		img, ok := result.Content[0].(mcp.ImageContent)
		require.True(t, ok)
		assert.Equal(t, "image/jpeg", img.MIMEType)
		assert.Equal(t, base64.StdEncoding.EncodeToString(image), img.Data)
		assert.Equal(t, "image/*", accept)

		text, ok := result.Content[1].(mcp.TextContent)
		require.True(t, ok)
		var info map[string]any
		require.NoError(t, json.Unmarshal([]byte(text.Text), &info))
		assert.Equal(t, "Image downloaded and ready for analysis", info["message"])
		assert.Equal(t, files.URL+"/pic.jpg", info["url"])

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("временный файл по умолчанию", func(t *testing.T) {
		result, err := downloadImage(context.Background(), client, createTestRequest(map[string]interface{}{
			"imageUrl": files.URL + "/pic",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)
		img := result.Content[0].(mcp.ImageContent)
		assert.Equal(t, "image/png", img.MIMEType)
	})

	t.Run("ошибка загрузки", func(t *testing.T) {
		result, err := downloadImage(context.Background(), client, createTestRequest(map[string]interface{}{
			"imageUrl":  files.URL + "/missing.png",
			"localPath": filepath.Join(t.TempDir(), "missing.png"),
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "[1006] http error: status 404", resultText(t, result))
	})
}
