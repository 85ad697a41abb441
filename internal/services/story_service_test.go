package services

import (
	"testing"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type StoryServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *StoryService
}

func (suite *StoryServiceTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.db.AutoMigrate(&models.Collection{}))

	st, err := store.New(suite.db)
	suite.Require().NoError(err)

	suite.service = NewStoryService(st)

	// Advance one second per call so generated IDs stay unique.
	clock := time.Date(2024, 1, 10, 15, 30, 45, 0, time.UTC)
	suite.service.now = func() time.Time {
		now := clock
		clock = clock.Add(time.Second)
		return now
	}
}

func (suite *StoryServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *StoryServiceTestSuite) TestCreateStoryStampsDates() {
	story, err := suite.service.CreateStory(CreateStoryInput{Title: "Monsoon letters"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "STY-20240110-153045", story.ID)
	assert.Equal(suite.T(), models.StoryStatusIdea, story.Status)
	assert.Equal(suite.T(), "2024-01-10", story.DateCreated)
	assert.Equal(suite.T(), "2024-01-10", story.LastUpdated)
	assert.NotNil(suite.T(), story.LinkedNotes)
	assert.NotNil(suite.T(), story.LinkedCanvaIdeas)
}

func (suite *StoryServiceTestSuite) TestCreateStoryRequiresTitle() {
	_, err := suite.service.CreateStory(CreateStoryInput{})

	assert.ErrorIs(suite.T(), err, ErrStoryTitleRequired)
}

func (suite *StoryServiceTestSuite) TestUpdateStoryRestampsLastUpdated() {
	story, err := suite.service.CreateStory(CreateStoryInput{Title: "Monsoon letters"})
	suite.Require().NoError(err)

	suite.service.now = func() time.Time {
		return time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	}

	genre := "drama"
	updated, err := suite.service.UpdateStory(story.ID, UpdateStoryInput{Genre: &genre})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), "drama", updated.Genre)
	assert.Equal(suite.T(), "2024-01-10", updated.DateCreated)
	assert.Equal(suite.T(), "2024-02-01", updated.LastUpdated)
}

func (suite *StoryServiceTestSuite) TestDeleteStoryCascadesToItsScenes() {
	story, err := suite.service.CreateStory(CreateStoryInput{Title: "Monsoon letters"})
	suite.Require().NoError(err)
	other, err := suite.service.CreateStory(CreateStoryInput{Title: "City lights"})
	suite.Require().NoError(err)

	_, err = suite.service.CreateScene(CreateSceneInput{StoryID: story.ID, Title: "Opening"})
	suite.Require().NoError(err)
	_, err = suite.service.CreateScene(CreateSceneInput{StoryID: story.ID, Title: "The letter"})
	suite.Require().NoError(err)
	kept, err := suite.service.CreateScene(CreateSceneInput{StoryID: other.ID, Title: "Rooftop"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteStory(story.ID))

	_, err = suite.service.GetStory(story.ID)
	assert.ErrorIs(suite.T(), err, ErrStoryNotFound)

	scenes := suite.service.ListScenes("")
	suite.Require().Len(scenes, 1)
	assert.Equal(suite.T(), kept.ID, scenes[0].ID)
}

func (suite *StoryServiceTestSuite) TestDeleteMissingStory() {
	err := suite.service.DeleteStory("STY-20240101-000000")

	assert.ErrorIs(suite.T(), err, ErrStoryNotFound)
}

func (suite *StoryServiceTestSuite) TestListStoriesMatchesAcrossFields() {
	_, err := suite.service.CreateStory(CreateStoryInput{Title: "Monsoon letters", Genre: "romance"})
	suite.Require().NoError(err)
	_, err = suite.service.CreateStory(CreateStoryInput{Title: "City lights", MainTheme: "loneliness"})
	suite.Require().NoError(err)

	assert.Len(suite.T(), suite.service.ListStories(""), 2)
	assert.Len(suite.T(), suite.service.ListStories("romance"), 1)
	assert.Len(suite.T(), suite.service.ListStories("LONELY"), 0)
	assert.Len(suite.T(), suite.service.ListStories("loneli"), 1)
}

func (suite *StoryServiceTestSuite) TestCreateSceneDefaultsType() {
	scene, err := suite.service.CreateScene(CreateSceneInput{Title: "Opening"})

	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.SceneReal, scene.Type)
}

func (suite *StoryServiceTestSuite) TestListScenesFiltersByStory() {
	_, err := suite.service.CreateScene(CreateSceneInput{StoryID: "STY-a", Title: "One"})
	suite.Require().NoError(err)
	_, err = suite.service.CreateScene(CreateSceneInput{StoryID: "STY-b", Title: "Two"})
	suite.Require().NoError(err)

	assert.Len(suite.T(), suite.service.ListScenes(""), 2)
	assert.Len(suite.T(), suite.service.ListScenes("STY-a"), 1)
	assert.Empty(suite.T(), suite.service.ListScenes("STY-c"))
}

func (suite *StoryServiceTestSuite) TestDeleteSceneLeavesStoryAlone() {
	story, err := suite.service.CreateStory(CreateStoryInput{Title: "Monsoon letters"})
	suite.Require().NoError(err)
	scene, err := suite.service.CreateScene(CreateSceneInput{StoryID: story.ID, Title: "Opening"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteScene(scene.ID))

	_, err = suite.service.GetStory(story.ID)
	assert.NoError(suite.T(), err)
}

func TestStoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StoryServiceTestSuite))
}
