package model

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

type Document struct {
	ID          int64
	Title       string
	Description string
	Content     string
}

type Topic struct {
	TopicID int
	Count   int
	Words   []string
	Weights []float64
}

type ArticleTopic struct {
	ArticleIndex       int
	PrimaryTopic       int
	TopicProbabilities []float64
	Confidence         float64
}

type ArticleEmbedding struct {
	ArticleIndex int
	Embedding    []float64
	TextLength   int
}

type SentimentResult struct {
	ArticleIndex int
	Sentiment    string
	Confidence   float64
	Polarity     float64
	Subjectivity float64
}

type TopicAnalysis struct {
	Topics        []Topic
	ArticleTopics []ArticleTopic
}

type SemanticAnalysis struct {
	Embeddings   []ArticleEmbedding
	Similarities []float64
}

type BatchAnalysis struct {
	Topics        []Topic
	ArticleTopics []ArticleTopic
	Embeddings    []ArticleEmbedding
	Sentiments    []SentimentResult
}
