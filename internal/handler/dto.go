package handler

import "github.com/tadeasf/czech-nlp/internal/model"

type ArticleRequest struct {
	ID          int64  `json:"id"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

type TopicsRequest struct {
	Articles  []ArticleRequest `json:"articles" binding:"dive"`
	NumTopics int              `json:"num_topics"`
}

type SemanticRequest struct {
	Articles []ArticleRequest `json:"articles" binding:"dive"`
	Query    string           `json:"query"`
}

type SentimentRequest struct {
	Articles []ArticleRequest `json:"articles" binding:"dive"`
}

type TopicResponse struct {
	TopicID int       `json:"topic_id"`
	Count   int       `json:"count"`
	Words   []string  `json:"words"`
	Weights []float64 `json:"weights"`
}

type ArticleTopicResponse struct {
	ArticleIndex       int       `json:"article_index"`
	PrimaryTopic       int       `json:"primary_topic"`
	TopicProbabilities []float64 `json:"topic_probabilities"`
	Confidence         float64   `json:"confidence"`
}

type TopicsResponse struct {
	Topics        []TopicResponse        `json:"topics"`
	ArticleTopics []ArticleTopicResponse `json:"article_topics"`
}

type EmbeddingResponse struct {
	ArticleIndex int       `json:"article_index"`
	Embedding    []float64 `json:"embedding"`
	TextLength   int       `json:"text_length"`
}

type SemanticResponse struct {
	Embeddings   []EmbeddingResponse `json:"embeddings"`
	Similarities []float64           `json:"similarities"`
}

type SentimentResultResponse struct {
	ArticleIndex int     `json:"article_index"`
	Sentiment    string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

type SentimentResponse struct {
	Sentiments []SentimentResultResponse `json:"sentiments"`
}

type BatchResponse struct {
	Topics        []TopicResponse           `json:"topics"`
	ArticleTopics []ArticleTopicResponse    `json:"article_topics"`
	Embeddings    []EmbeddingResponse       `json:"embeddings"`
	Sentiments    []SentimentResultResponse `json:"sentiments"`
}

func toDocuments(articles []ArticleRequest) []model.Document {
	docs := make([]model.Document, len(articles))
	for i, a := range articles {
		docs[i] = model.Document{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
		}
	}
	return docs
}

func toTopicResponses(topics []model.Topic) []TopicResponse {
	res := make([]TopicResponse, len(topics))
	for i, t := range topics {
		res[i] = TopicResponse{
			TopicID: t.TopicID,
			Count:   t.Count,
			Words:   t.Words,
			Weights: t.Weights,
		}
	}
	return res
}

func toArticleTopicResponses(assignments []model.ArticleTopic) []ArticleTopicResponse {
	res := make([]ArticleTopicResponse, len(assignments))
	for i, a := range assignments {
		res[i] = ArticleTopicResponse{
			ArticleIndex:       a.ArticleIndex,
			PrimaryTopic:       a.PrimaryTopic,
			TopicProbabilities: a.TopicProbabilities,
			Confidence:         a.Confidence,
		}
	}
	return res
}

func toEmbeddingResponses(embeddings []model.ArticleEmbedding) []EmbeddingResponse {
	res := make([]EmbeddingResponse, len(embeddings))
	for i, e := range embeddings {
		res[i] = EmbeddingResponse{
			ArticleIndex: e.ArticleIndex,
			Embedding:    e.Embedding,
			TextLength:   e.TextLength,
		}
	}
	return res
}

func toSentimentResponses(sentiments []model.SentimentResult) []SentimentResultResponse {
	res := make([]SentimentResultResponse, len(sentiments))
	for i, s := range sentiments {
		res[i] = SentimentResultResponse{
			ArticleIndex: s.ArticleIndex,
			Sentiment:    s.Sentiment,
			Confidence:   s.Confidence,
			Polarity:     s.Polarity,
			Subjectivity: s.Subjectivity,
		}
	}
	return res
}
