package client

import (
	"context"
	"net/http"

	"baladiya/pkg/api"
	"baladiya/pkg/types"
)

func (c *Client) Register(ctx context.Context, input api.RegisterInput) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, api.Register, nil, input, http.StatusCreated, &user); err != nil {
		return nil, err
	}

	c.InvalidateAll()

	return &user, nil
}

func (c *Client) Login(ctx context.Context, cin, password string) (*types.User, error) {
	var user types.User
	input := api.LoginInput{CIN: cin, Password: password}
	if err := c.do(ctx, api.Login, nil, input, http.StatusOK, &user); err != nil {
		return nil, err
	}

	c.InvalidateAll()

	return &user, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, api.Logout, nil, nil, http.StatusOK, nil); err != nil {
		return err
	}

	c.InvalidateAll()

	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (*types.User, error) {
	var user types.User
	if err := c.do(ctx, api.CurrentUser, nil, nil, http.StatusOK, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) Requests(ctx context.Context) ([]*types.Request, error) {
	var requests []*types.Request
	if err := c.cachedList(ctx, api.ListRequests, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) CreateRequest(ctx context.Context, input api.CreateRequestInput) (*types.Request, error) {
	var request types.Request
	if err := c.do(ctx, api.CreateRequest, nil, input, http.StatusCreated, &request); err != nil {
		return nil, err
	}

	c.invalidate(api.ListRequests.Path)

	return &request, nil
}

func (c *Client) UpdateRequestStatus(ctx context.Context, id int, status types.RequestStatus) (*types.Request, error) {
	var request types.Request
	input := api.UpdateRequestStatusInput{Status: status}
	err := c.do(ctx, api.UpdateRequestStatus, map[string]any{"id": id}, input, http.StatusOK, &request)
	if err != nil {
		return nil, err
	}

	c.invalidate(api.ListRequests.Path)

	return &request, nil
}

func (c *Client) AttachRequestFile(ctx context.Context, id int, attachmentURL string) (*types.Request, error) {
	var request types.Request
	input := api.AttachRequestFileInput{AttachmentURL: attachmentURL}
	err := c.do(ctx, api.AttachRequestFile, map[string]any{"id": id}, input, http.StatusOK, &request)
	if err != nil {
		return nil, err
	}

	c.invalidate(api.ListRequests.Path)

	return &request, nil
}

func (c *Client) Users(ctx context.Context) ([]*types.User, error) {
	var users []*types.User
	if err := c.cachedList(ctx, api.ListUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id int, role types.Role) (*types.User, error) {
	var user types.User
	input := api.UpdateUserRoleInput{Role: role}
	err := c.do(ctx, api.UpdateUserRole, map[string]any{"id": id}, input, http.StatusOK, &user)
	if err != nil {
		return nil, err
	}

	c.invalidate(api.ListUsers.Path)

	return &user, nil
}

func (c *Client) ToggleUserBan(ctx context.Context, id int) (*types.User, error) {
	var user types.User
	err := c.do(ctx, api.ToggleUserBan, map[string]any{"id": id}, nil, http.StatusOK, &user)
	if err != nil {
		return nil, err
	}

	c.invalidate(api.ListUsers.Path)

	return &user, nil
}

func (c *Client) Reports(ctx context.Context) ([]*types.Report, error) {
	var reports []*types.Report
	if err := c.cachedList(ctx, api.ListReports, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreateReport(ctx context.Context, input api.CreateReportInput) (*types.Report, error) {
	var report types.Report
	if err := c.do(ctx, api.CreateReport, nil, input, http.StatusCreated, &report); err != nil {
		return nil, err
	}

	c.invalidate(api.ListReports.Path)

	return &report, nil
}

func (c *Client) UpdateReportStatus(ctx context.Context, id int, status types.ReportStatus) (*types.Report, error) {
	var report types.Report
	input := api.UpdateReportStatusInput{Status: status}
	err := c.do(ctx, api.UpdateReportStatus, map[string]any{"id": id}, input, http.StatusOK, &report)
	if err != nil {
		return nil, err
	}

	c.invalidate(api.ListReports.Path)

	return &report, nil
}

func (c *Client) Announcements(ctx context.Context) ([]*types.Announcement, error) {
	var announcements []*types.Announcement
	if err := c.cachedList(ctx, api.ListNews, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (c *Client) CreateAnnouncement(ctx context.Context, input api.CreateAnnouncementInput) (*types.Announcement, error) {
	var announcement types.Announcement
	if err := c.do(ctx, api.CreateNews, nil, input, http.StatusCreated, &announcement); err != nil {
		return nil, err
	}

	c.invalidate(api.ListNews.Path)

	return &announcement, nil
}

func (c *Client) DeleteAnnouncement(ctx context.Context, id int) error {
	err := c.do(ctx, api.DeleteNews, map[string]any{"id": id}, nil, http.StatusOK, nil)
	if err != nil {
		return err
	}

	c.invalidate(api.ListNews.Path)

	return nil
}
