package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (h *Handler) handleAdminLogin(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.auth.VerifyAdmin(c.Request.Context(), req.Password); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": h.sessions.Issue()})
}

func (h *Handler) handleAdminLogout(c *gin.Context) {
	h.sessions.Revoke(c.GetHeader(HeaderAdminToken))
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

func (h *Handler) handleChangeAdminPassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
		Hint            string `json:"hint"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.auth.ChangeAdminPassword(c.Request.Context(), req.CurrentPassword, req.NewPassword, req.Hint); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "changed"})
}

func (h *Handler) handleChangeChatPassword(c *gin.Context) {
	var req struct {
		AdminPassword string `json:"admin_password"`
		NewPassword   string `json:"new_password"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.auth.ChangeChatPassword(c.Request.Context(), req.AdminPassword, req.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "changed"})
}

// --- Study material catalog ---

func (h *Handler) handleListSubjects(c *gin.Context) {
	subjects, err := h.store.Subjects(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

type subjectRequest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) handleAddSubject(c *gin.Context) {
	var req subjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.AddSubject(c.Request.Context(), req.Name, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) handleEditSubject(c *gin.Context) {
	var req subjectRequest
	if !h.bindJSON(c, &req) {
		return
	}
	name := req.Name
	if name == "" {
		name = c.Param("name")
	}
	if err := h.store.EditSubject(c.Request.Context(), c.Param("name"), name, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) handleDeleteSubject(c *gin.Context) {
	if err := h.store.DeleteSubject(c.Request.Context(), c.Param("name")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type unitRequest struct {
	Name     string   `json:"name"`
	Filename string   `json:"filename"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) handleAddUnit(c *gin.Context) {
	var req unitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.AddUnit(c.Request.Context(), c.Param("name"), req.Name, req.Filename, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) handleEditUnit(c *gin.Context) {
	var req unitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	name := req.Name
	if name == "" {
		name = c.Param("unit")
	}
	if err := h.store.EditUnit(c.Request.Context(), c.Param("name"), c.Param("unit"), name, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) handleDeleteUnit(c *gin.Context) {
	if err := h.store.DeleteUnit(c.Request.Context(), c.Param("name"), c.Param("unit")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Question paper catalog ---

func (h *Handler) handleListPapers(c *gin.Context) {
	papers, err := h.store.PastPapers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"papers": papers})
}

type paperRequest struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Filename string   `json:"filename"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) handleAddPaper(c *gin.Context) {
	var req paperRequest
	if !h.bindJSON(c, &req) {
		return
	}
	id, err := h.store.AddPastPaper(c.Request.Context(), req.Name, req.Type, req.Filename, req.Keywords)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) handleEditPaper(c *gin.Context) {
	var req paperRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.EditPastPaper(c.Request.Context(), c.Param("id"), req.Name, req.Type, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) handleDeletePaper(c *gin.Context) {
	if err := h.store.DeletePastPaper(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Campus info catalog ---

func (h *Handler) handleListInfo(c *gin.Context) {
	info, err := h.store.Info(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"info": info})
}

func (h *Handler) handleAddInfoSection(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.AddInfoSection(c.Request.Context(), req.Name); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) handleRenameInfoSection(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.RenameInfoSection(c.Request.Context(), c.Param("section"), req.Name); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "renamed"})
}

func (h *Handler) handleDeleteInfoSection(c *gin.Context) {
	if err := h.store.DeleteInfoSection(c.Request.Context(), c.Param("section")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

type infoItemRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

func (h *Handler) handleAddInfoItem(c *gin.Context) {
	var req infoItemRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.AddInfoItem(c.Request.Context(), c.Param("section"), req.Title, req.Content, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) handleEditInfoItem(c *gin.Context) {
	var req infoItemRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.EditInfoItem(c.Request.Context(), c.Param("section"), c.Param("item"), req.Title, req.Content, req.Keywords); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *Handler) handleDeleteInfoItem(c *gin.Context) {
	if err := h.store.DeleteInfoItem(c.Request.Context(), c.Param("section"), c.Param("item")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Knowledge base ---

func (h *Handler) handleListKnowledge(c *gin.Context) {
	entries, err := h.store.Knowledge(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"knowledge": entries})
}

func (h *Handler) handleAddKnowledge(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question and answer are required"})
		return
	}
	if err := h.store.AddKnowledge(c.Request.Context(), req.Question, req.Answer); err != nil {
		h.respondError(c, err)
		return
	}
	h.rebuildKnowledgeIndex(c)
	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handler) handleDeleteKnowledge(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid knowledge id"})
		return
	}
	if err := h.store.DeleteKnowledge(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	h.rebuildKnowledgeIndex(c)
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// rebuildKnowledgeIndex refreshes the BM25 index after a knowledge
// base mutation so lookups see the change immediately.
func (h *Handler) rebuildKnowledgeIndex(c *gin.Context) {
	entries, err := h.store.Knowledge(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Warn("failed to reload knowledge base for reindex")
		return
	}
	if err := h.index.Rebuild(entries); err != nil {
		h.logger.WithError(err).Warn("failed to rebuild knowledge index")
	}
}

// --- Synonyms ---

func (h *Handler) handleListSynonyms(c *gin.Context) {
	synonyms, err := h.store.Synonyms(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synonyms": synonyms})
}

func (h *Handler) handleSaveSynonyms(c *gin.Context) {
	var req struct {
		Synonyms map[string][]string `json:"synonyms"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Synonyms == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "synonyms map is required"})
		return
	}
	if err := h.store.SaveSynonyms(c.Request.Context(), req.Synonyms); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

// --- Unanswered queries and feedback ---

func (h *Handler) handleListUnanswered(c *gin.Context) {
	queries, err := h.store.Unanswered(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unanswered": queries})
}

func (h *Handler) handleDeleteUnanswered(c *gin.Context) {
	var req struct {
		Query string `json:"query"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.DeleteUnanswered(c.Request.Context(), req.Query); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) handleListFeedback(c *gin.Context) {
	entries, err := h.store.Feedback(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": entries})
}

func (h *Handler) handleDeleteFeedback(c *gin.Context) {
	var req struct {
		Text        string `json:"text"`
		SubmittedAt string `json:"submitted_at"`
	}
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.store.DeleteFeedback(c.Request.Context(), req.Text, req.SubmittedAt); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --- Stats ---

func (h *Handler) handleStats(c *gin.Context) {
	ctx := c.Request.Context()

	subjects, err := h.store.Subjects(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	units := 0
	for _, subject := range subjects {
		units += len(subject.Units)
	}

	papers, err := h.store.PastPapers(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	info, err := h.store.Info(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	infoItems := 0
	for _, section := range info {
		infoItems += len(section.Items)
	}

	knowledgeEntries, err := h.store.Knowledge(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	unanswered, err := h.store.Unanswered(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	feedback, err := h.store.Feedback(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}
	chats, err := h.store.ListChats(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"subjects":      len(subjects),
		"units":         units,
		"papers":        len(papers),
		"info_sections": len(info),
		"info_items":    infoItems,
		"knowledge":     len(knowledgeEntries),
		"unanswered":    len(unanswered),
		"feedback":      len(feedback),
		"chats":         len(chats),
	})
}
