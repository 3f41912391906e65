package authz

// Package authz decides whether an authenticated actor may perform an
// action on a resource. Ownership checks live here and nowhere else, so
// the same rule cannot drift between handlers.
//
// The evaluator only answers allow/deny for a resource that exists: the
// caller resolves the resource first and handles absence separately, so
// "not found" and "forbidden" are never conflated.

type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Resource is the closed set of things the evaluator knows how to judge.
type Resource interface {
	isResource()
}

// User resource: mutable only by itself.
type User struct {
	ID int64
}

// MediaItem resource: mutable only by its owner.
type MediaItem struct {
	ID      int64
	OwnerID int64
}

// Comment resource carries both ownership relations that matter:
// the comment's author and the owner of the media it is attached to.
type Comment struct {
	ID           int64
	AuthorID     int64
	MediaOwnerID int64
}

func (User) isResource()      {}
func (MediaItem) isResource() {}
func (Comment) isResource()   {}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision             { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// Authorize evaluates the ownership rule for the given actor, action and
// resource. Reads are public for every resource kind. Comment deletion is
// the one disjunctive rule: the media owner may moderate comments on
// their own media.
func Authorize(actorID int64, action Action, res Resource) Decision {
	if action == ActionRead {
		return allow()
	}

	switch r := res.(type) {
	case User:
		if actorID == r.ID {
			return allow()
		}
		return deny("not_account_owner")

	case MediaItem:
		if actorID == r.OwnerID {
			return allow()
		}
		return deny("not_media_owner")

	case Comment:
		if actorID == r.AuthorID {
			return allow()
		}
		if action == ActionDelete && actorID == r.MediaOwnerID {
			return allow()
		}
		return deny("not_comment_author")
	}

	return deny("unknown_resource")
}
