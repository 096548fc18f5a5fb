package ai

import (
	"context"
	"fmt"
	"sync"

	"branchwise.dev/branchwise/internal/feature"
	"branchwise.dev/branchwise/internal/interview"
)

// MockClient is a mock implementation of Client for testing purposes.
// It allows setting predefined responses and errors without making actual
// agent calls.
type MockClient struct {
	mu               sync.Mutex
	mockFeatures     []feature.Feature
	mockProposal     string
	mockQuestions    []interview.Question
	mockError        error
	analyzeCallCount int
	lastContext      *ProjectContext
	lastFeature      feature.Feature
}

// NewMockClient creates a new MockClient instance
func NewMockClient() *MockClient {
	return &MockClient{}
}

// AnalyzeFeatures implements the Client interface
func (m *MockClient) AnalyzeFeatures(_ context.Context, projectCtx *ProjectContext) ([]feature.Feature, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.analyzeCallCount++
	m.lastContext = projectCtx

	if m.mockError != nil {
		return nil, m.mockError
	}
	if m.mockFeatures == nil {
		return nil, fmt.Errorf("no mock features set, use SetMockFeatures()")
	}
	return m.mockFeatures, nil
}

// GenerateProposal implements the Client interface
func (m *MockClient) GenerateProposal(_ context.Context, f feature.Feature) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastFeature = f

	if m.mockError != nil {
		return "", m.mockError
	}
	if m.mockProposal == "" {
		return "", fmt.Errorf("no mock proposal set, use SetMockProposal()")
	}
	return m.mockProposal, nil
}

// PersonalizeInterview implements the Client interface
func (m *MockClient) PersonalizeInterview(_ context.Context, set interview.QuestionSet, projectCtx *ProjectContext) (interview.QuestionSet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastContext = projectCtx

	if m.mockError != nil {
		return interview.QuestionSet{}, m.mockError
	}
	if m.mockQuestions != nil {
		set.Questions = m.mockQuestions
	}
	return set, nil
}

// SetMockFeatures sets the features returned by AnalyzeFeatures
func (m *MockClient) SetMockFeatures(features []feature.Feature) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockFeatures = features
}

// SetMockProposal sets the proposal returned by GenerateProposal
func (m *MockClient) SetMockProposal(proposal string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockProposal = proposal
}

// SetMockQuestions sets the questions returned by PersonalizeInterview
func (m *MockClient) SetMockQuestions(questions []interview.Question) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockQuestions = questions
}

// SetMockError sets an error returned by all methods
func (m *MockClient) SetMockError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mockError = err
}

// AnalyzeCallCount returns how many times AnalyzeFeatures was called
func (m *MockClient) AnalyzeCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.analyzeCallCount
}

// LastContext returns the project context from the most recent call
func (m *MockClient) LastContext() *ProjectContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastContext
}

// LastFeature returns the feature from the most recent proposal call
func (m *MockClient) LastFeature() feature.Feature {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFeature
}
