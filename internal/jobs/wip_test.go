package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/sevigo/triage-warden/internal/core"
	"github.com/sevigo/triage-warden/mocks"
)

func TestIsWorkInProgress(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"WIP: add feature", true},
		{"Fix WIP bug", true},
		{"wip", true},
		{"[Work In Progress] refactor", true},
		{"DO NOT MERGE - experiment", true},
		{"swiping gestures", true},
		{"ready", false},
		{"add feature", false},
		{"work-in-progress", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWorkInProgress(tt.title))
		})
	}
}

func TestWipCheck(t *testing.T) {
	delivery := &core.Delivery{Owner: "acme", Repo: "widgets", Subject: core.Subject{Kind: core.SubjectPullRequest, Number: 7}}

	tests := []struct {
		name    string
		mode    wipMode
		title   string
		setup   func(c *mocks.MockRepositoryClient)
		wantErr bool
	}{
		{
			name:  "opened with marker sets pending",
			mode:  wipOnOpened,
			title: "WIP: add feature",
			setup: func(c *mocks.MockRepositoryClient) {
				gomock.InOrder(
					c.EXPECT().CreateCommitStatus(gomock.Any(), "sha-1", wipStatus).Return(nil),
					c.EXPECT().CreateIssueComment(gomock.Any(), 7, "Your pull request is currently marked as a work in progress @alice!").Return(nil),
				)
			},
		},
		{
			name:  "opened with clean title does nothing",
			mode:  wipOnOpened,
			title: "add feature",
			setup: func(*mocks.MockRepositoryClient) {},
		},
		{
			name:  "edited with marker sets pending",
			mode:  wipOnEdited,
			title: "add feature (do not merge)",
			setup: func(c *mocks.MockRepositoryClient) {
				c.EXPECT().CreateCommitStatus(gomock.Any(), "sha-1", wipStatus).Return(nil)
				c.EXPECT().CreateIssueComment(gomock.Any(), 7, gomock.Any()).Return(nil)
			},
		},
		{
			name:  "edited with clean title sets success",
			mode:  wipOnEdited,
			title: "add feature",
			setup: func(c *mocks.MockRepositoryClient) {
				gomock.InOrder(
					c.EXPECT().CreateCommitStatus(gomock.Any(), "sha-1", readyStatus).Return(nil),
					c.EXPECT().CreateIssueComment(gomock.Any(), 7, "Your pull request is ready for review @alice!").Return(nil),
				)
			},
		},
		{
			name:  "status failure skips comment",
			mode:  wipOnEdited,
			title: "add feature",
			setup: func(c *mocks.MockRepositoryClient) {
				c.EXPECT().CreateCommitStatus(gomock.Any(), "sha-1", readyStatus).Return(errors.New("boom"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockRepositoryClient(ctrl)
			client.EXPECT().GetPullRequest(gomock.Any(), 7).Return(&core.PullRequest{
				Number: 7, Author: "alice", Title: tt.title, HeadRef: "feature", HeadSHA: "sha-1",
			}, nil)
			tt.setup(client)

			err := wipCheck(tt.mode)(context.Background(), client, delivery, testLogger())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
