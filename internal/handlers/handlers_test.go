package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/devfolio/apiserver/types"
	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "unit-test-secret"

type fakeAdminRepo struct {
	admins  map[int]types.Admin
	byEmail map[string]int
	calls   int
}

func newFakeAdminRepo(admins ...types.Admin) *fakeAdminRepo {
	repo := &fakeAdminRepo{
		admins:  make(map[int]types.Admin),
		byEmail: make(map[string]int),
	}
	for _, admin := range admins {
		repo.admins[admin.ID] = admin
		repo.byEmail[admin.Email] = admin.ID
	}
	return repo
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id int) (types.Admin, error) {
	r.calls++
	admin, ok := r.admins[id]
	if !ok {
		return types.Admin{}, store.ErrNotFound
	}
	return admin, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (types.Admin, error) {
	r.calls++
	id, ok := r.byEmail[email]
	if !ok {
		return types.Admin{}, store.ErrNotFound
	}
	return r.admins[id], nil
}

func (r *fakeAdminRepo) Create(_ context.Context, admin types.Admin) (types.Admin, error) {
	admin.ID = len(r.admins) + 1
	r.admins[admin.ID] = admin
	r.byEmail[admin.Email] = admin.ID
	return admin, nil
}

type fakeProjectRepo struct {
	projects map[int]types.Project
	nextID   int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[int]types.Project), nextID: 1}
}

func (r *fakeProjectRepo) List(_ context.Context) ([]types.Project, error) {
	out := make([]types.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProjectRepo) Get(_ context.Context, id int) (types.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return types.Project{}, store.ErrNotFound
	}
	return p, nil
}

func (r *fakeProjectRepo) Create(_ context.Context, project types.Project) (types.Project, error) {
	project.ID = r.nextID
	r.nextID++
	r.projects[project.ID] = project
	return project, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, project types.Project) (types.Project, error) {
	if _, ok := r.projects[project.ID]; !ok {
		return types.Project{}, store.ErrNotFound
	}
	r.projects[project.ID] = project
	return project, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.projects[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) Count(_ context.Context) (int, error) {
	return len(r.projects), nil
}

type fakeSkillRepo struct {
	skills map[int]types.Skill
	nextID int
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{skills: make(map[int]types.Skill), nextID: 1}
}

func (r *fakeSkillRepo) List(_ context.Context) ([]types.Skill, error) {
	out := make([]types.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSkillRepo) Get(_ context.Context, id int) (types.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return types.Skill{}, store.ErrNotFound
	}
	return s, nil
}

func (r *fakeSkillRepo) Create(_ context.Context, skill types.Skill) (types.Skill, error) {
	skill.ID = r.nextID
	r.nextID++
	r.skills[skill.ID] = skill
	return skill, nil
}

func (r *fakeSkillRepo) Update(_ context.Context, skill types.Skill) (types.Skill, error) {
	if _, ok := r.skills[skill.ID]; !ok {
		return types.Skill{}, store.ErrNotFound
	}
	r.skills[skill.ID] = skill
	return skill, nil
}

func (r *fakeSkillRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.skills[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.skills, id)
	return nil
}

func (r *fakeSkillRepo) Count(_ context.Context) (int, error) {
	return len(r.skills), nil
}

type fakeContactRepo struct {
	messages map[int]types.ContactMessage
	nextID   int
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{messages: make(map[int]types.ContactMessage), nextID: 1}
}

func (r *fakeContactRepo) List(_ context.Context) ([]types.ContactMessage, error) {
	out := make([]types.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeContactRepo) Create(_ context.Context, message types.ContactMessage) (types.ContactMessage, error) {
	message.ID = r.nextID
	r.nextID++
	r.messages[message.ID] = message
	return message, nil
}

func (r *fakeContactRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.messages[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

func (r *fakeContactRepo) Count(_ context.Context) (int, error) {
	return len(r.messages), nil
}

type fakeEducationRepo struct {
	entries map[int]types.Education
	nextID  int
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{entries: make(map[int]types.Education), nextID: 1}
}

func (r *fakeEducationRepo) List(_ context.Context) ([]types.Education, error) {
	out := make([]types.Education, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEducationRepo) Get(_ context.Context, id int) (types.Education, error) {
	e, ok := r.entries[id]
	if !ok {
		return types.Education{}, store.ErrNotFound
	}
	return e, nil
}

func (r *fakeEducationRepo) Create(_ context.Context, entry types.Education) (types.Education, error) {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeEducationRepo) Update(_ context.Context, entry types.Education) (types.Education, error) {
	if _, ok := r.entries[entry.ID]; !ok {
		return types.Education{}, store.ErrNotFound
	}
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeEducationRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.entries[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeEducationRepo) Count(_ context.Context) (int, error) {
	return len(r.entries), nil
}

type fakeExperienceRepo struct {
	entries map[int]types.Experience
	nextID  int
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{entries: make(map[int]types.Experience), nextID: 1}
}

func (r *fakeExperienceRepo) List(_ context.Context) ([]types.Experience, error) {
	out := make([]types.Experience, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeExperienceRepo) Get(_ context.Context, id int) (types.Experience, error) {
	e, ok := r.entries[id]
	if !ok {
		return types.Experience{}, store.ErrNotFound
	}
	return e, nil
}

func (r *fakeExperienceRepo) Create(_ context.Context, entry types.Experience) (types.Experience, error) {
	entry.ID = r.nextID
	r.nextID++
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeExperienceRepo) Update(_ context.Context, entry types.Experience) (types.Experience, error) {
	if _, ok := r.entries[entry.ID]; !ok {
		return types.Experience{}, store.ErrNotFound
	}
	r.entries[entry.ID] = entry
	return entry, nil
}

func (r *fakeExperienceRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.entries[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *fakeExperienceRepo) Count(_ context.Context) (int, error) {
	return len(r.entries), nil
}

type fakeProfileRepo struct {
	profile *types.Profile
}

func (r *fakeProfileRepo) Get(_ context.Context) (types.Profile, error) {
	if r.profile == nil {
		return types.Profile{}, store.ErrNotFound
	}
	return *r.profile, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, profile types.Profile) (types.Profile, error) {
	profile.ID = 1
	r.profile = &profile
	return profile, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, profile types.Profile) (types.Profile, error) {
	if r.profile == nil {
		return types.Profile{}, store.ErrNotFound
	}
	r.profile = &profile
	return profile, nil
}

type fakeBlobStore struct {
	puts map[string][]byte
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{puts: make(map[string][]byte)}
}

func (b *fakeBlobStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.puts[key] = data
	return nil
}

func (b *fakeBlobStore) PublicURL(key string) string {
	return "http://blobs.test/" + key
}

type fakeNotifier struct {
	published []publishedEvent
}

type publishedEvent struct {
	channel string
	data    []byte
	attrs   map[string]string
}

func (n *fakeNotifier) Publish(_ context.Context, channel string, data []byte, attrs map[string]string) (string, error) {
	n.published = append(n.published, publishedEvent{channel: channel, data: data, attrs: attrs})
	return "event-1", nil
}

const testAdminPassword = "correct horse battery staple"

// testAdmin is registered in every test router.
var testAdmin = func() types.Admin {
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return types.Admin{
		ID:           1,
		Email:        "admin@example.com",
		PasswordHash: string(hash),
	}
}()

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := issueToken(testAdmin.ID, []byte(testSecret), defaultTokenTTL)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

type testEnv struct {
	router       *chi.Mux
	adminRepo    *fakeAdminRepo
	projects     *fakeProjectRepo
	blogs        *fakeBlogRepo
	skills       *fakeSkillRepo
	certificates *fakeCertificateRepo
	contacts     *fakeContactRepo
	education    *fakeEducationRepo
	experience   *fakeExperienceRepo
	profile      *fakeProfileRepo
	blobs        *fakeBlobStore
	notifier     *fakeNotifier
}

func newTestEnv() *testEnv {
	env := &testEnv{
		adminRepo:    newFakeAdminRepo(testAdmin),
		projects:     newFakeProjectRepo(),
		blogs:        newFakeBlogRepo(),
		skills:       newFakeSkillRepo(),
		certificates: newFakeCertificateRepo(),
		contacts:     newFakeContactRepo(),
		education:    newFakeEducationRepo(),
		experience:   newFakeExperienceRepo(),
		profile:      &fakeProfileRepo{},
		blobs:        newFakeBlobStore(),
		notifier:     &fakeNotifier{},
	}

	adminService := services.NewAdminService(env.adminRepo)
	projectService := services.NewProjectService(env.projects)
	blogService := services.NewBlogService(env.blogs)
	skillService := services.NewSkillService(env.skills)
	certificateService := services.NewCertificateService(env.certificates)
	contactService := services.NewContactService(env.contacts, env.notifier)
	curriculumService := services.NewCurriculumService(env.education, env.experience)
	profileService := services.NewProfileService(env.profile, env.blobs)
	countService := services.NewCountService(
		env.projects, env.skills, env.blogs, env.contacts, env.education, env.experience,
	)

	auth := RequireAuth(adminService, testSecret)
	optionalAuth := OptionalAuth(adminService, testSecret)

	router := chi.NewRouter()
	router.Route("/admin", func(r chi.Router) {
		AuthRouter(r, adminService, testSecret)
	})
	router.Route("/projects", func(r chi.Router) {
		ProjectRouter(r, projectService, auth)
	})
	router.Route("/blogs", func(r chi.Router) {
		BlogRouter(r, blogService, auth)
	})
	router.Route("/skills", func(r chi.Router) {
		SkillRouter(r, skillService, auth, optionalAuth)
	})
	router.Route("/certificates", func(r chi.Router) {
		CertificateRouter(r, certificateService, auth)
	})
	router.Route("/contacts", func(r chi.Router) {
		ContactRouter(r, contactService, auth)
	})
	router.Route("/curriculum", func(r chi.Router) {
		CurriculumRouter(r, curriculumService, auth)
	})
	router.Route("/counts", func(r chi.Router) {
		CountRouter(r, countService, auth)
	})
	router.Route("/profile", func(r chi.Router) {
		ProfileRouter(r, profileService, auth)
	})

	env.router = router
	return env
}

type fakeCertificateRepo struct {
	certificates map[int]types.Certificate
	nextID       int
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{certificates: make(map[int]types.Certificate), nextID: 1}
}

func (r *fakeCertificateRepo) List(_ context.Context) ([]types.Certificate, error) {
	out := make([]types.Certificate, 0, len(r.certificates))
	for _, c := range r.certificates {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCertificateRepo) Get(_ context.Context, id int) (types.Certificate, error) {
	c, ok := r.certificates[id]
	if !ok {
		return types.Certificate{}, store.ErrNotFound
	}
	return c, nil
}

func (r *fakeCertificateRepo) Create(_ context.Context, certificate types.Certificate) (types.Certificate, error) {
	certificate.ID = r.nextID
	r.nextID++
	r.certificates[certificate.ID] = certificate
	return certificate, nil
}

func (r *fakeCertificateRepo) Update(_ context.Context, certificate types.Certificate) (types.Certificate, error) {
	if _, ok := r.certificates[certificate.ID]; !ok {
		return types.Certificate{}, store.ErrNotFound
	}
	r.certificates[certificate.ID] = certificate
	return certificate, nil
}

func (r *fakeCertificateRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.certificates[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.certificates, id)
	return nil
}

type fakeBlogRepo struct {
	blogs  map[int]types.Blog
	nextID int
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: make(map[int]types.Blog), nextID: 1}
}

func (r *fakeBlogRepo) List(_ context.Context) ([]types.Blog, error) {
	out := make([]types.Blog, 0, len(r.blogs))
	for _, b := range r.blogs {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBlogRepo) Get(_ context.Context, id int) (types.Blog, error) {
	b, ok := r.blogs[id]
	if !ok {
		return types.Blog{}, store.ErrNotFound
	}
	return b, nil
}

func (r *fakeBlogRepo) Create(_ context.Context, blog types.Blog) (types.Blog, error) {
	blog.ID = r.nextID
	r.nextID++
	r.blogs[blog.ID] = blog
	return blog, nil
}

func (r *fakeBlogRepo) Update(_ context.Context, blog types.Blog) (types.Blog, error) {
	if _, ok := r.blogs[blog.ID]; !ok {
		return types.Blog{}, store.ErrNotFound
	}
	r.blogs[blog.ID] = blog
	return blog, nil
}

func (r *fakeBlogRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.blogs[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.blogs, id)
	return nil
}

func (r *fakeBlogRepo) Count(_ context.Context) (int, error) {
	return len(r.blogs), nil
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}
