package reddit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// node is a comment (or the submission root) in the reply tree.
type node struct {
	name     string
	comment  Comment
	children []item
}

// item is either a loaded comment or an unexpanded "load more" placeholder.
type item struct {
	node *node
	more *moreData
}

// Submission returns a post and its fully expanded comments, flattened breadth-first.
func (r *redditImpl) Submission(ctx context.Context, threadURL string, sort CommentSort) (*Submission, error) {
	id, err := SubmissionID(threadURL)
	if err != nil {
		return nil, err
	}
	if sort == "" {
		sort = CommentSortBest
	}

	pages, err := r.fetchThread(ctx, id, sort, "")
	if err != nil {
		return nil, err
	}

	link, err := firstLink(pages[0])
	if err != nil {
		return nil, err
	}

	root := &node{name: link.Name}
	byName := map[string]*node{link.Name: root}

	root.children, err = buildItems(pages[1].Data.Children, byName)
	if err != nil {
		return nil, err
	}

	if err := r.expand(ctx, link, sort, root, byName); err != nil {
		return nil, err
	}

	return &Submission{
		Link:     link,
		Sort:     sort,
		Comments: flatten(root),
	}, nil
}

// fetchThread loads /comments/{id}; focus narrows the tree to one comment's subtree.
func (r *redditImpl) fetchThread(ctx context.Context, id string, sort CommentSort, focus string) ([]listingThing, error) {
	query := url.Values{}
	query.Set("sort", string(sort))
	query.Set("limit", strconv.Itoa(commentPageLimit))
	if focus != "" {
		query.Set("comment", focus)
	}

	var pages []listingThing
	err := r.get(ctx, "/comments/"+id, query, &pages, func(code int) error {
		if code == http.StatusNotFound || code == http.StatusForbidden {
			return fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pages) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrSubmissionNotFound, id)
	}
	return pages, nil
}

func firstLink(page listingThing) (Link, error) {
	for _, child := range page.Data.Children {
		if child.Kind != kindLink {
			continue
		}
		var d linkData
		if err := json.Unmarshal(child.Data, &d); err != nil {
			return Link{}, fmt.Errorf("reddit: failed to decode link: %w", err)
		}
		return d.toLink(), nil
	}
	return Link{}, ErrSubmissionNotFound
}

// buildItems converts a nested listing into tree items, registering every comment by fullname.
func buildItems(things []thing, byName map[string]*node) ([]item, error) {
	items := make([]item, 0, len(things))
	for _, th := range things {
		switch th.Kind {
		case kindComment:
			n, replies, err := decodeComment(th.Data)
			if err != nil {
				return nil, err
			}
			byName[n.name] = n
			if replies != nil {
				n.children, err = buildItems(replies.Data.Children, byName)
				if err != nil {
					return nil, err
				}
			}
			items = append(items, item{node: n})
		case kindMore:
			var md moreData
			if err := json.Unmarshal(th.Data, &md); err != nil {
				return nil, fmt.Errorf("reddit: failed to decode more: %w", err)
			}
			items = append(items, item{more: &md})
		}
	}
	return items, nil
}

func decodeComment(raw json.RawMessage) (*node, *listingThing, error) {
	var cd commentData
	if err := json.Unmarshal(raw, &cd); err != nil {
		return nil, nil, fmt.Errorf("reddit: failed to decode comment: %w", err)
	}

	n := &node{
		name: cd.Name,
		comment: Comment{
			ID:       cd.ID,
			Name:     cd.Name,
			ParentID: cd.ParentID,
			Author:   cd.Author,
			Body:     cd.Body,
			Score:    cd.Score,
			Depth:    cd.Depth,
		},
	}

	// replies is "" when empty, otherwise a Listing object.
	trimmed := bytes.TrimSpace(cd.Replies)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return n, nil, nil
	}
	var replies listingThing
	if err := json.Unmarshal(trimmed, &replies); err != nil {
		return nil, nil, fmt.Errorf("reddit: failed to decode replies: %w", err)
	}
	return n, &replies, nil
}

// expand resolves every "load more" placeholder until none remain.
func (r *redditImpl) expand(ctx context.Context, link Link, sort CommentSort, root *node, byName map[string]*node) error {
	seen := make(map[string]bool)
	for {
		parent, idx, more := findMore(root)
		if more == nil {
			return nil
		}

		var replacement []item
		key := more.ParentID + "/" + more.ID + "/" + strings.Join(more.Children, ",")
		if !seen[key] {
			seen[key] = true
			var err error
			replacement, err = r.resolveMore(ctx, link, sort, parent, more, byName)
			if err != nil {
				return err
			}
		}

		spliced := make([]item, 0, len(parent.children)-1+len(replacement))
		spliced = append(spliced, parent.children[:idx]...)
		spliced = append(spliced, replacement...)
		spliced = append(spliced, parent.children[idx+1:]...)
		parent.children = spliced
	}
}

// findMore returns the first placeholder in breadth-first order with its parent and index.
func findMore(root *node) (*node, int, *moreData) {
	queue := []*node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for i, it := range n.children {
			if it.more != nil {
				return n, i, it.more
			}
			queue = append(queue, it.node)
		}
	}
	return nil, 0, nil
}

// resolveMore loads the comments a placeholder stands for. Items whose parent is the
// placeholder's parent are returned for splicing; deeper ones attach to their parents.
func (r *redditImpl) resolveMore(ctx context.Context, link Link, sort CommentSort, parent *node, more *moreData, byName map[string]*node) ([]item, error) {
	if len(more.Children) == 0 {
		return r.continueThread(ctx, link, sort, parent, byName)
	}

	var replacement []item
	for start := 0; start < len(more.Children); start += moreChildrenBatch {
		end := start + moreChildrenBatch
		if end > len(more.Children) {
			end = len(more.Children)
		}

		query := url.Values{}
		query.Set("api_type", "json")
		query.Set("link_id", link.Name)
		query.Set("children", strings.Join(more.Children[start:end], ","))
		query.Set("sort", string(sort))
		query.Set("limit_children", "false")

		var resp moreChildrenResponse
		if err := r.get(ctx, "/api/morechildren", query, &resp, nil); err != nil {
			return nil, err
		}
		if len(resp.JSON.Errors) > 0 {
			return nil, fmt.Errorf("reddit: morechildren error: %v", resp.JSON.Errors[0])
		}

		for _, th := range resp.JSON.Data.Things {
			var it item
			var parentID string
			switch th.Kind {
			case kindComment:
				n, _, err := decodeComment(th.Data)
				if err != nil {
					return nil, err
				}
				byName[n.name] = n
				it, parentID = item{node: n}, n.comment.ParentID
			case kindMore:
				var md moreData
				if err := json.Unmarshal(th.Data, &md); err != nil {
					return nil, fmt.Errorf("reddit: failed to decode more: %w", err)
				}
				it, parentID = item{more: &md}, md.ParentID
			default:
				continue
			}

			if p, ok := byName[parentID]; ok && p != parent {
				p.children = append(p.children, it)
				continue
			}
			replacement = append(replacement, it)
		}
	}
	return replacement, nil
}

// continueThread handles "continue this thread" placeholders, which carry no ids:
// the parent's subtree is refetched with the parent as focus.
func (r *redditImpl) continueThread(ctx context.Context, link Link, sort CommentSort, parent *node, byName map[string]*node) ([]item, error) {
	if parent.comment.ID == "" {
		return nil, nil
	}

	pages, err := r.fetchThread(ctx, link.ID, sort, parent.comment.ID)
	if err != nil {
		return nil, err
	}

	for _, th := range pages[1].Data.Children {
		if th.Kind != kindComment {
			continue
		}
		focused, replies, err := decodeComment(th.Data)
		if err != nil {
			return nil, err
		}
		if focused.name != parent.name || replies == nil {
			continue
		}
		return buildItems(replies.Data.Children, byName)
	}
	return nil, nil
}

// flatten lists comments breadth-first: all top-level comments, then their replies, and so on.
func flatten(root *node) []Comment {
	var out []Comment
	queue := make([]*node, 0, len(root.children))
	for _, it := range root.children {
		if it.node != nil {
			queue = append(queue, it.node)
		}
	}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.comment)
		for _, it := range n.children {
			if it.node != nil {
				queue = append(queue, it.node)
			}
		}
	}
	return out
}
