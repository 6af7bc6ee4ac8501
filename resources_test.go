package mangadex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"

	pkgerrs "github.com/gomanga/mangadex/pkg/errors"
	"github.com/gomanga/mangadex/pkg/types"
)

// newAuthedTestClient returns a client holding a valid session, so methods
// behind DoAuth reach the handler with a bearer token attached.
func newAuthedTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	client := newTestClient(t, handler)
	if err := client.SetTokens(types.AuthTokens{Session: "session", Refresh: "refresh"}); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}
	return client
}

// requireRequest fails the handler's test unless method, path, and bearer
// auth match.
func requireRequest(t *testing.T, r *http.Request, method, path string) {
	t.Helper()

	if r.Method != method || r.URL.Path != path {
		t.Errorf("unexpected request %s %s, want %s %s", r.Method, r.URL.Path, method, path)
	}
	if got := r.Header.Get("Authorization"); got != "Bearer session" {
		t.Errorf("expected bearer auth, got %q", got)
	}
}

func TestCreateCustomList(t *testing.T) {
	t.Parallel()

	mangaID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireRequest(t, r, http.MethodPost, "/list")

		var body types.CustomListRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Name != "favorites" || body.Visibility != types.CustomListPrivate {
			t.Errorf("unexpected body %+v", body)
		}
		if len(body.Manga) != 1 || body.Manga[0] != mangaID {
			t.Errorf("unexpected manga seed %v", body.Manga)
		}

		fmt.Fprint(w, `{"result":"ok","data":{"id":"22222222-2222-2222-2222-222222222222","type":"custom_list","attributes":{"name":"favorites","visibility":"private"}}}`)
	}))

	list, err := client.CreateCustomList(context.Background(), &types.CustomListRequest{
		Name:       "favorites",
		Visibility: types.CustomListPrivate,
		Manga:      []uuid.UUID{mangaID},
		Version:    1,
	})
	if err != nil {
		t.Fatalf("CreateCustomList failed: %v", err)
	}
	if list.Data.Attributes.Name != "favorites" {
		t.Errorf("unexpected list name %q", list.Data.Attributes.Name)
	}

	if _, err := client.CreateCustomList(context.Background(), nil); err == nil {
		t.Error("expected error for nil request")
	}
}

func TestUpdateAndDeleteCustomList(t *testing.T) {
	t.Parallel()

	listID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			requireRequest(t, r, http.MethodPut, "/list/"+listID.String())
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"custom_list","attributes":{"name":"renamed","visibility":"public"}}}`, listID)
		case http.MethodDelete:
			requireRequest(t, r, http.MethodDelete, "/list/"+listID.String())
			fmt.Fprint(w, `{"result":"ok"}`)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	updated, err := client.UpdateCustomList(context.Background(), listID, &types.CustomListRequest{
		Name:       "renamed",
		Visibility: types.CustomListPublic,
		Version:    2,
	})
	if err != nil {
		t.Fatalf("UpdateCustomList failed: %v", err)
	}
	if updated.Data.Attributes.Name != "renamed" {
		t.Errorf("unexpected name %q", updated.Data.Attributes.Name)
	}

	if err := client.DeleteCustomList(context.Background(), listID); err != nil {
		t.Fatalf("DeleteCustomList failed: %v", err)
	}

	if err := client.DeleteCustomList(context.Background(), uuid.Nil); err == nil {
		t.Error("expected error for nil list id")
	}
}

func TestCreateGroup(t *testing.T) {
	t.Parallel()

	leader := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireRequest(t, r, http.MethodPost, "/group")

		var body types.GroupRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Name != "scans" || body.Leader != leader {
			t.Errorf("unexpected body %+v", body)
		}

		fmt.Fprint(w, `{"result":"ok","data":{"id":"44444444-4444-4444-4444-444444444444","type":"scanlation_group","attributes":{"name":"scans"}}}`)
	}))

	group, err := client.CreateGroup(context.Background(), &types.GroupRequest{
		Name:    "scans",
		Leader:  leader,
		Version: 1,
	})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.Data.Attributes.Name != "scans" {
		t.Errorf("unexpected group name %q", group.Data.Attributes.Name)
	}

	// Missing leader is rejected before the network.
	_, err = client.CreateGroup(context.Background(), &types.GroupRequest{Name: "scans", Version: 1})
	var valErr *pkgerrs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for missing leader, got %v", err)
	}
}

func TestUpdateAndDeleteGroup(t *testing.T) {
	t.Parallel()

	groupID := uuid.MustParse("44444444-4444-4444-4444-444444444444")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			requireRequest(t, r, http.MethodPut, "/group/"+groupID.String())
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"scanlation_group","attributes":{"name":"renamed"}}}`, groupID)
		case http.MethodDelete:
			requireRequest(t, r, http.MethodDelete, "/group/"+groupID.String())
			fmt.Fprint(w, `{"result":"ok"}`)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	if _, err := client.UpdateGroup(context.Background(), groupID, &types.GroupRequest{Name: "renamed", Version: 2}); err != nil {
		t.Fatalf("UpdateGroup failed: %v", err)
	}
	if err := client.DeleteGroup(context.Background(), groupID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
}

func TestCreateUpdateDeleteManga(t *testing.T) {
	t.Parallel()

	mangaID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			requireRequest(t, r, http.MethodPost, "/manga")

			var body types.MangaRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Title["en"] != "New Title" || body.Version != 1 {
				t.Errorf("unexpected body %+v", body)
			}
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"manga","attributes":{"title":{"en":"New Title"}}}}`, mangaID)

		case r.Method == http.MethodPut:
			requireRequest(t, r, http.MethodPut, "/manga/"+mangaID.String())
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"manga","attributes":{"title":{"en":"Renamed"}}}}`, mangaID)

		case r.Method == http.MethodDelete:
			requireRequest(t, r, http.MethodDelete, "/manga/"+mangaID.String())
			fmt.Fprint(w, `{"result":"ok"}`)
		}
	}))

	request := &types.MangaRequest{
		Title:   types.LocalizedString{"en": "New Title"},
		Version: 1,
	}

	created, err := client.CreateManga(context.Background(), request)
	if err != nil {
		t.Fatalf("CreateManga failed: %v", err)
	}
	if created.Data.ID != mangaID {
		t.Errorf("unexpected id %s", created.Data.ID)
	}

	if _, err := client.UpdateManga(context.Background(), mangaID, request); err != nil {
		t.Fatalf("UpdateManga failed: %v", err)
	}
	if err := client.DeleteManga(context.Background(), mangaID); err != nil {
		t.Fatalf("DeleteManga failed: %v", err)
	}

	// A request without any localized title never reaches the network.
	_, err = client.CreateManga(context.Background(), &types.MangaRequest{Version: 1})
	var valErr *pkgerrs.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError for empty title, got %v", err)
	}
}

func TestUpdateAndDeleteChapter(t *testing.T) {
	t.Parallel()

	chapterID := uuid.MustParse("66666666-6666-6666-6666-666666666666")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			requireRequest(t, r, http.MethodPut, "/chapter/"+chapterID.String())

			var body types.ChapterUpdateRequest
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Title != "Chapter 1" || body.TranslatedLanguage != "en" {
				t.Errorf("unexpected body %+v", body)
			}
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"chapter","attributes":{"title":"Chapter 1"}}}`, chapterID)

		case http.MethodDelete:
			requireRequest(t, r, http.MethodDelete, "/chapter/"+chapterID.String())
			fmt.Fprint(w, `{"result":"ok"}`)
		}
	}))

	updated, err := client.UpdateChapter(context.Background(), chapterID, &types.ChapterUpdateRequest{
		Title:              "Chapter 1",
		TranslatedLanguage: "en",
		Data:               []string{"1.png"},
		Version:            2,
	})
	if err != nil {
		t.Fatalf("UpdateChapter failed: %v", err)
	}
	if updated.Data.Attributes.Title != "Chapter 1" {
		t.Errorf("unexpected title %q", updated.Data.Attributes.Title)
	}

	if err := client.DeleteChapter(context.Background(), chapterID); err != nil {
		t.Fatalf("DeleteChapter failed: %v", err)
	}
}

func TestEditAndDeleteCover(t *testing.T) {
	t.Parallel()

	coverID := uuid.MustParse("77777777-7777-7777-7777-777777777777")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			requireRequest(t, r, http.MethodPut, "/cover/"+coverID.String())
			fmt.Fprintf(w, `{"result":"ok","data":{"id":%q,"type":"cover_art","attributes":{"volume":"2"}}}`, coverID)
		case http.MethodDelete:
			requireRequest(t, r, http.MethodDelete, "/cover/"+coverID.String())
			fmt.Fprint(w, `{"result":"ok"}`)
		}
	}))

	edited, err := client.EditCover(context.Background(), coverID, &types.CoverEditRequest{Volume: "2", Version: 2})
	if err != nil {
		t.Fatalf("EditCover failed: %v", err)
	}
	if edited.Data.Attributes.Volume != "2" {
		t.Errorf("unexpected volume %q", edited.Data.Attributes.Volume)
	}

	if err := client.DeleteCover(context.Background(), coverID); err != nil {
		t.Fatalf("DeleteCover failed: %v", err)
	}
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireRequest(t, r, http.MethodGet, "/user")
		if got := r.URL.Query().Get("username"); got != "reader" {
			t.Errorf("expected username filter, got %q", got)
		}
		fmt.Fprint(w, `{"results":[{"result":"ok","data":{"id":"88888888-8888-8888-8888-888888888888","type":"user","attributes":{"username":"reader"}}}],"limit":10,"offset":0,"total":1}`)
	}))

	users, err := client.ListUsers(context.Background(), &types.UserListOptions{
		Pagination: types.Pagination{Limit: 10},
		Username:   "reader",
	})
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if users.Total != 1 || users.Results[0].Data.Attributes.Username != "reader" {
		t.Errorf("unexpected user list %+v", users)
	}
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		requireRequest(t, r, http.MethodPost, "/user/password")

		var body types.UpdatePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.OldPassword != "oldpassword" || body.NewPassword != "newpassword" {
			t.Errorf("unexpected body %+v", body)
		}
		fmt.Fprint(w, `{"result":"ok"}`)
	}))

	if err := client.UpdatePassword(context.Background(), "oldpassword", "newpassword"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}

	// A too-short new password is rejected client-side.
	if err := client.UpdatePassword(context.Background(), "oldpassword", "short"); err == nil {
		t.Error("expected error for short new password")
	}
	if hits.Load() != 1 {
		t.Errorf("expected exactly 1 request, got %d", hits.Load())
	}
}

func TestUpdateEmail(t *testing.T) {
	t.Parallel()

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireRequest(t, r, http.MethodPost, "/user/email")
		fmt.Fprint(w, `{"result":"ok"}`)
	}))

	if err := client.UpdateEmail(context.Background(), "reader@example.org"); err != nil {
		t.Fatalf("UpdateEmail failed: %v", err)
	}
	if err := client.UpdateEmail(context.Background(), ""); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestFollowedListings(t *testing.T) {
	t.Parallel()

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/follows/group":
			fmt.Fprint(w, `{"results":[],"limit":10,"offset":0,"total":0}`)
		case "/user/follows/user":
			fmt.Fprint(w, `{"results":[],"limit":10,"offset":0,"total":0}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	if _, err := client.ListFollowedGroups(context.Background(), types.Pagination{Limit: 10}); err != nil {
		t.Fatalf("ListFollowedGroups failed: %v", err)
	}
	if _, err := client.ListFollowedUsers(context.Background(), types.Pagination{Limit: 10}); err != nil {
		t.Fatalf("ListFollowedUsers failed: %v", err)
	}
}

func TestDeleteUserAndApprove(t *testing.T) {
	t.Parallel()

	userID := uuid.MustParse("88888888-8888-8888-8888-888888888888")
	code := uuid.MustParse("99999999-9999-9999-9999-999999999999")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user/" + userID.String():
			requireRequest(t, r, http.MethodDelete, "/user/"+userID.String())
		case "/user/delete/" + code.String():
			requireRequest(t, r, http.MethodPost, "/user/delete/"+code.String())
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"result":"ok"}`)
	}))

	if err := client.DeleteUser(context.Background(), userID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if err := client.ApproveUserDeletion(context.Background(), code); err != nil {
		t.Fatalf("ApproveUserDeletion failed: %v", err)
	}
}

func TestListReportReasons(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reports/reasons/manga" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"results":[{"result":"ok","data":{"id":"aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa","type":"report_reason","attributes":{"reason":{"en":"Spam"},"detailsRequired":false,"category":"manga","version":1}}}],"limit":10,"offset":0,"total":1}`)
	}))

	reasons, err := client.ListReportReasons(context.Background(), types.ReportCategoryManga)
	if err != nil {
		t.Fatalf("ListReportReasons failed: %v", err)
	}
	if reasons.Total != 1 || reasons.Results[0].Data.Attributes.Reason["en"] != "Spam" {
		t.Errorf("unexpected reasons %+v", reasons)
	}

	if _, err := client.ListReportReasons(context.Background(), ""); err == nil {
		t.Error("expected error for empty category")
	}
}

func TestCreateReport(t *testing.T) {
	t.Parallel()

	objectID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	client := newAuthedTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireRequest(t, r, http.MethodPost, "/report")

		var body types.CreateReportRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Category != types.ReportCategoryManga || body.ObjectID != objectID {
			t.Errorf("unexpected body %+v", body)
		}
		fmt.Fprint(w, `{"result":"ok"}`)
	}))

	err := client.CreateReport(context.Background(), &types.CreateReportRequest{
		Category: types.ReportCategoryManga,
		Reason:   "spam",
		ObjectID: objectID,
		Details:  "stolen upload",
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	var valErr *pkgerrs.ValidationError
	if err := client.CreateReport(context.Background(), nil); !errors.As(err, &valErr) {
		t.Errorf("expected ValidationError for nil request, got %v", err)
	}
}
