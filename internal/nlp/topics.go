package nlp

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/tadeasf/czech-nlp/internal/model"
)

const (
	topWordsPerTopic = 10
	kmeansMaxIter    = 100
	kmeansSeed       = 1
)

// fitTopics clusters document embeddings with k-means and derives topics
// from the clusters. The model is fitted from scratch on exactly the
// documents given; nothing is carried over between calls.
//
// At most numTopics topics come back, ordered by descending document
// count. Clusters that end up empty are dropped, so fewer topics than
// requested is a normal outcome for small or homogeneous document sets.
func fitTopics(cleaned []string, embeddings [][]float64, numTopics int) ([]model.Topic, []model.ArticleTopic) {
	n := len(embeddings)
	if n == 0 {
		return []model.Topic{}, []model.ArticleTopic{}
	}

	k := numTopics
	if k > n {
		k = n
	}

	rng := rand.New(rand.NewSource(kmeansSeed))
	centroids, assignments := fitKMeans(embeddings, k, rng)

	counts := make([]int, len(centroids))
	for _, c := range assignments {
		counts[c]++
	}

	// Surviving cluster ids, ascending. Probability vectors align with
	// this order.
	var topicIDs []int
	for id, count := range counts {
		if count > 0 {
			topicIDs = append(topicIDs, id)
		}
	}

	topics := buildTopics(cleaned, assignments, topicIDs, counts)
	sort.SliceStable(topics, func(i, j int) bool {
		return topics[i].Count > topics[j].Count
	})

	articleTopics := make([]model.ArticleTopic, n)
	for i := range embeddings {
		probs := topicProbabilities(embeddings[i], centroids, topicIDs)

		confidence := 0.0
		for _, p := range probs {
			if p > confidence {
				confidence = p
			}
		}

		if len(probs) > numTopics {
			probs = probs[:numTopics]
		}

		articleTopics[i] = model.ArticleTopic{
			ArticleIndex:       i,
			PrimaryTopic:       assignments[i],
			TopicProbabilities: probs,
			Confidence:         confidence,
		}
	}

	return topics, articleTopics
}

// buildTopics scores terms per cluster with tf weighted by an inverse
// cluster frequency, so words shared by every cluster rank low.
func buildTopics(cleaned []string, assignments []int, topicIDs []int, counts []int) []model.Topic {
	termFreq := make(map[int]map[string]float64)
	clusterFreq := make(map[string]int)

	for _, id := range topicIDs {
		termFreq[id] = make(map[string]float64)
	}
	for i, text := range cleaned {
		cluster := assignments[i]
		for _, term := range strings.Fields(text) {
			termFreq[cluster][term]++
		}
	}
	for _, freq := range termFreq {
		for term := range freq {
			clusterFreq[term]++
		}
	}

	topics := make([]model.Topic, 0, len(topicIDs))
	for _, id := range topicIDs {
		type scoredTerm struct {
			term  string
			score float64
		}

		scored := make([]scoredTerm, 0, len(termFreq[id]))
		for term, tf := range termFreq[id] {
			icf := math.Log(1 + float64(len(topicIDs))/float64(clusterFreq[term]))
			scored = append(scored, scoredTerm{term: term, score: tf * icf})
		}
		sort.Slice(scored, func(i, j int) bool {
			if scored[i].score != scored[j].score {
				return scored[i].score > scored[j].score
			}
			return scored[i].term < scored[j].term
		})
		if len(scored) > topWordsPerTopic {
			scored = scored[:topWordsPerTopic]
		}

		words := make([]string, len(scored))
		weights := make([]float64, len(scored))
		for i, s := range scored {
			words[i] = s.term
			weights[i] = s.score
		}

		topics = append(topics, model.Topic{
			TopicID: id,
			Count:   counts[id],
			Words:   words,
			Weights: weights,
		})
	}

	return topics
}

// topicProbabilities turns distances to the surviving centroids into a
// softmax distribution. Closer centroid, higher probability.
func topicProbabilities(vec []float64, centroids [][]float64, topicIDs []int) []float64 {
	dists := make([]float64, len(topicIDs))
	minDist := math.MaxFloat64
	for i, id := range topicIDs {
		dists[i] = euclideanDistance(vec, centroids[id])
		if dists[i] < minDist {
			minDist = dists[i]
		}
	}

	probs := make([]float64, len(dists))
	sum := 0.0
	for i, d := range dists {
		probs[i] = math.Exp(minDist - d)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}

	return probs
}

func fitKMeans(vecs [][]float64, k int, rng *rand.Rand) ([][]float64, []int) {
	centroids := kmeansPlusPlusInit(vecs, k, rng)
	assignments := make([]int, len(vecs))

	for iter := 0; iter < kmeansMaxIter; iter++ {
		changed := false
		for i, vec := range vecs {
			best := nearestCentroid(vec, centroids)
			if best != assignments[i] || iter == 0 {
				assignments[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		dims := len(vecs[0])
		sums := make([][]float64, k)
		counts := make([]int, k)
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, vec := range vecs {
			c := assignments[i]
			counts[c]++
			for d, v := range vec {
				sums[c][d] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue // empty cluster keeps its centroid, dropped later
			}
			for d := range sums[c] {
				sums[c][d] /= float64(counts[c])
			}
			centroids[c] = sums[c]
		}
	}

	return centroids, assignments
}

// kmeansPlusPlusInit seeds centroids with D^2 weighting. The rng is
// deterministically seeded by the caller so repeated fits over the same
// documents agree.
func kmeansPlusPlusInit(vecs [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	first := vecs[rng.Intn(len(vecs))]
	centroids = append(centroids, append([]float64(nil), first...))

	for len(centroids) < k {
		weights := make([]float64, len(vecs))
		total := 0.0
		for i, vec := range vecs {
			d := math.MaxFloat64
			for _, c := range centroids {
				if dist := squaredDistance(vec, c); dist < d {
					d = dist
				}
			}
			weights[i] = d
			total += d
		}

		var next []float64
		if total == 0 {
			// all points coincide with existing centroids
			next = vecs[rng.Intn(len(vecs))]
		} else {
			target := rng.Float64() * total
			acc := 0.0
			idx := len(vecs) - 1
			for i, w := range weights {
				acc += w
				if acc >= target {
					idx = i
					break
				}
			}
			next = vecs[idx]
		}
		centroids = append(centroids, append([]float64(nil), next...))
	}

	return centroids
}

func nearestCentroid(vec []float64, centroids [][]float64) int {
	best := 0
	bestDist := math.MaxFloat64
	for c, centroid := range centroids {
		if d := squaredDistance(vec, centroid); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func squaredDistance(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func euclideanDistance(a, b []float64) float64 {
	return math.Sqrt(squaredDistance(a, b))
}
